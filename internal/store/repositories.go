package store

// Repositories groups every repository bound to one querier: the connection
// pool for standalone calls, or a transaction inside [UnitOfWork.Do].
type Repositories struct {
	UserRepository       UserRepository
	CreditCardRepository CreditCardRepository
	CarPackageRepository CarPackageRepository
	CarRepository        CarRepository
	OrderRepository      OrderRepository
	AccessKeyRepository  AccessKeyRepository
}

func newRepositories(s sqlStore) *Repositories {
	return &Repositories{
		UserRepository:       &userRepository{s},
		CreditCardRepository: &creditCardRepository{s},
		CarPackageRepository: &carPackageRepository{s},
		CarRepository:        &carRepository{s},
		OrderRepository:      &orderRepository{s},
		AccessKeyRepository:  &accessKeyRepository{s},
	}
}
