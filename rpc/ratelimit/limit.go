// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// New - a limiter for one RPC service
func New(limit float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(limit), burst)
}

// Limit - wait for a single request slot
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - wait for one slot per requested item
//
// a count outside 1..maximumCount still costs a single slot and is
// rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return wait(limiter, count)
}

func wait(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
