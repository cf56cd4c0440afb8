package utils

import "time"

// CurrentTimestamp returns the current unix time in seconds.
func CurrentTimestamp() int64 {
	return time.Now().Unix()
}
