// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

// See doc.go for documentation
import "github.com/grailbio/segchain/cmd/bio-segchain/cmd"

func main() {
	cmd.Run()
}
