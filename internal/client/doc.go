// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the rental service.
//
// Every invocation runs a single subcommand (cars, order, balance, ...)
// against the REST API through [adapter.RentalAPI]. Commands that need an
// identity log in first with the configured credentials. Results are printed
// as indented JSON.
package client
