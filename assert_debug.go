//go:build sulid_debug
// +build sulid_debug

package sulid

// Strict build: out-of-range parts are a precondition violation rather
// than being masked.

func assertV1Parts(timestampMs uint64, random Uint128, dataCenterID uint8, machineID uint8) {
	assertCommonParts(timestampMs, random)
	if dataCenterID > MaxDataCenterID {
		panic("sulid: data center id must be in the range 0-31")
	}
	if machineID > MaxMachineID {
		panic("sulid: machine id must be in the range 0-31")
	}
}

func assertV2Parts(timestampMs uint64, random Uint128, workerID uint16) {
	assertCommonParts(timestampMs, random)
	if workerID > MaxWorkerID {
		panic("sulid: worker id must be in the range 0-1023")
	}
}

func assertCommonParts(timestampMs uint64, random Uint128) {
	if timestampMs > MaxTimestamp {
		panic("sulid: timestamp must be in the range 0-281474976710655")
	}
	if random.Compare(MaxRandom) > 0 {
		panic("sulid: random must be in the range 0-1180591620717411303423")
	}
}
