/*
DESCRIPTION
  logging.go provides debug logging for the h263dec package. Logging is off
  by default; callers that want parse traces direct them somewhere with
  SetLogOutput.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263dec

import (
	"io"
	"io/ioutil"
	"log"
)

var logger = log.New(ioutil.Discard, "h263dec: ", log.Lmicroseconds)

// SetLogOutput directs the decoder's debug log to w. Pass ioutil.Discard to
// silence it again.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}
