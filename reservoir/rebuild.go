// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/txlog"
)

// Rebuild - derive all state again from the log
//
// storage must have dropped the derived pools first; each entry is
// applied with the evaluation time recorded when it was accepted, so
// every node folding the same log reaches the same state
func Rebuild() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return fault.NotInitialised
	}

	log := globalData.log
	log.Infof("rebuilding from %d log entries…", txlog.Count())

	count := 0
	err := txlog.Replay(1, func(entry txlog.Entry) error {
		record, err := entry.Envelope.Packed.Unpack()
		if nil != err {
			return fault.Detailf(fault.CorruptRecord, "sequence: %d  hash: %s  error: %s", entry.Sequence, entry.Hash, err)
		}

		trx, err := storage.NewDBTransaction()
		if nil != err {
			return err
		}
		if err := globalData.apply(trx, entry.Hash, record, entry.Timestamp); nil != err {
			trx.Abort()
			log.Criticalf("replay sequence: %d  hash: %s  error: %s", entry.Sequence, entry.Hash, err)
			return fault.Detailf(fault.ReplayDiverged, "sequence: %d  hash: %s  error: %s", entry.Sequence, entry.Hash, err)
		}
		if err := trx.Commit(); nil != err {
			return err
		}

		count += 1
		if 0 == count%10000 {
			log.Infof("rebuilt: %d", count)
		}
		return nil
	})
	if nil != err {
		return err
	}

	log.Infof("rebuild complete: %d entries", count)
	return storage.ReindexDone()
}
