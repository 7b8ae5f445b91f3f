// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - setup and handle all of the incoming JSON RPC requests
// from participants and the node operator
//
// two interfaces are served: public for participant submissions and
// queries, private for registry and state administration. Each has
// its own listeners, TLS configuration and connection limit, and every
// submission is tagged with the interface it arrived on
//
// standard golang RPC services can be used on the client side to
// access these services
package rpc
