// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the batch command line front end of the strings
// editor.
//
// Every command starts the session coordinator, performs its work through the
// editing session and prints a short plain-text report. Change sets for the
// apply command are read from YAML files.
package client
