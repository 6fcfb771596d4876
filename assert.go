//go:build !sulid_debug
// +build !sulid_debug

package sulid

// In the default build out-of-range parts are silently masked to their
// declared widths; see assert_debug.go for the strict build.

func assertV1Parts(timestampMs uint64, random Uint128, dataCenterID uint8, machineID uint8) {
}

func assertV2Parts(timestampMs uint64, random Uint128, workerID uint16) {
}
