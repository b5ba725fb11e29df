// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the sign-in flow, the main loop and the background sync worker
// into a single process lifecycle.
package client
