// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the one-shot command line client of the feature
// serving API.
//
// An [App] reads a request from a JSON file, sends it through an
// adapter.ServingAdapter and prints the response as indented JSON.
package client
