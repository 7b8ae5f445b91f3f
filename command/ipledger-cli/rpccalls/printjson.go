// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

func (client *Client) printJson(title string, message interface{}) error {

	if !client.verbose || nil == client.handle {
		return nil
	}

	prefix := ""
	indent := "  "
	b, err := json.MarshalIndent(message, prefix, indent)
	if nil != err {
		return err
	}

	if "" == title {
		fmt.Fprintf(client.handle, "%s\n", b)
	} else {
		fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
	}
	return nil
}

// call with the request and reply echoed in verbose mode
func (client *Client) call(method string, title string, arguments interface{}, reply interface{}) error {
	client.printJson(title+" Request", arguments)

	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}

	client.printJson(title+" Reply", reply)
	return nil
}
