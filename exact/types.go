package exact

import "errors"

// MaxInstanceSize is the largest instance the mask enumeration can encode.
const MaxInstanceSize = 63

// ErrInstanceTooLarge is returned when an instance has more than
// MaxInstanceSize items.
var ErrInstanceTooLarge = errors.New("exact: instance size exceeds 63 items")
