/*
DESCRIPTION
  errors.go provides errors for the bits package.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bits

import "errors"

// ErrBadBitCount is returned when a read of more than 32 bits is requested.
var ErrBadBitCount = errors.New("bit count exceeds 32")
