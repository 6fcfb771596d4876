package sulidd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sulidio/sulid"
	"github.com/sulidio/sulid/internal/test"
	"github.com/sulidio/sulid/internal/version"
)

type ErrMessage struct {
	Message string `json:"message"`
}

func bootstrapSULIDd(t *testing.T, opts *Options) *SULIDd {
	if opts == nil {
		opts = NewOptions()
	}
	opts.Logger = test.NewTestLogger(t)
	opts.HTTPAddress = "127.0.0.1:0"

	s, err := New(opts)
	test.Nil(t, err)
	go s.Main()

	time.Sleep(100 * time.Millisecond)

	return s
}

func httpGet(t *testing.T, url string) (int, []byte) {
	resp, err := http.Get(url)
	test.Nil(t, err)
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	test.Nil(t, err)
	return resp.StatusCode, body
}

func TestHTTPPing(t *testing.T) {
	s := bootstrapSULIDd(t, nil)
	defer s.Exit()

	code, body := httpGet(t, fmt.Sprintf("http://%s/ping", s.RealHTTPAddr()))
	test.Equal(t, 200, code)
	test.Equal(t, "OK", string(body))
}

func TestHTTPInfo(t *testing.T) {
	s := bootstrapSULIDd(t, nil)
	defer s.Exit()

	code, body := httpGet(t, fmt.Sprintf("http://%s/info", s.RealHTTPAddr()))
	test.Equal(t, 200, code)

	var info struct {
		Version string `json:"version"`
	}
	test.Nil(t, json.Unmarshal(body, &info))
	test.Equal(t, version.Binary, info.Version)
}

func TestHTTPID(t *testing.T) {
	s := bootstrapSULIDd(t, nil)
	defer s.Exit()

	code, body := httpGet(t, fmt.Sprintf("http://%s/id", s.RealHTTPAddr()))
	test.Equal(t, 200, code)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	test.Equal(t, 1, len(lines))
	_, err := sulid.Parse(lines[0])
	test.Nil(t, err)

	code, body = httpGet(t, fmt.Sprintf("http://%s/id?count=5", s.RealHTTPAddr()))
	test.Equal(t, 200, code)

	lines = strings.Split(strings.TrimSpace(string(body)), "\n")
	test.Equal(t, 5, len(lines))
	seen := make(map[string]bool)
	for _, line := range lines {
		id, err := sulid.Parse(line)
		test.Nil(t, err)
		test.Equal(t, false, seen[line])
		seen[line] = true
		test.Equal(t, uint16(s.opts.WorkerID), id.WorkerID())
	}
}

func TestHTTPIDBadCount(t *testing.T) {
	s := bootstrapSULIDd(t, nil)
	defer s.Exit()

	code, body := httpGet(t, fmt.Sprintf("http://%s/id?count=bad", s.RealHTTPAddr()))
	test.Equal(t, 400, code)
	test.Equal(t, "INVALID_COUNT", string(body))

	code, body = httpGet(t, fmt.Sprintf("http://%s/id?count=0", s.RealHTTPAddr()))
	test.Equal(t, 400, code)
	test.Equal(t, "INVALID_COUNT", string(body))

	code, body = httpGet(t, fmt.Sprintf("http://%s/id?count=1001", s.RealHTTPAddr()))
	test.Equal(t, 400, code)
	test.Equal(t, "COUNT_TOO_LARGE", string(body))
}

func TestHTTPIDV1(t *testing.T) {
	opts := NewOptions()
	opts.IDVersion = 1
	opts.DataCenterID = 3
	opts.MachineID = 7
	s := bootstrapSULIDd(t, opts)
	defer s.Exit()

	code, body := httpGet(t, fmt.Sprintf("http://%s/v1/id?count=3", s.RealHTTPAddr()))
	test.Equal(t, 200, code)

	var resp idsResponse
	test.Nil(t, json.Unmarshal(body, &resp))
	test.Equal(t, 1, resp.IDVersion)
	test.Equal(t, uint8(3), resp.DataCenterID)
	test.Equal(t, uint8(7), resp.MachineID)
	test.Equal(t, 3, len(resp.IDs))
	for _, raw := range resp.IDs {
		id, err := sulid.Parse(raw)
		test.Nil(t, err)
		test.Equal(t, uint8(3), id.DataCenterID())
		test.Equal(t, uint8(7), id.MachineID())
	}
}

func TestHTTPDecode(t *testing.T) {
	s := bootstrapSULIDd(t, nil)
	defer s.Exit()

	code, body := httpGet(t,
		fmt.Sprintf("http://%s/v1/decode/01D39ZY06FGSCTVN4T2V9PKHFZ", s.RealHTTPAddr()))
	test.Equal(t, 200, code)

	var resp decodeResponse
	test.Nil(t, json.Unmarshal(body, &resp))
	test.Equal(t, "01D39ZY06FGSCTVN4T2V9PKHFZ", resp.ID)

	want, err := sulid.Parse("01D39ZY06FGSCTVN4T2V9PKHFZ")
	test.Nil(t, err)
	test.Equal(t, want.Timestamp(), resp.TimestampMs)
	test.Equal(t, want.DataCenterID(), resp.DataCenterID)
	test.Equal(t, want.MachineID(), resp.MachineID)
	test.Equal(t, want.WorkerID(), resp.WorkerID)
	test.Equal(t, want.Random().Hi, resp.RandomHi)
	test.Equal(t, want.Random().Lo, resp.RandomLo)
}

func TestHTTPDecodeError(t *testing.T) {
	s := bootstrapSULIDd(t, nil)
	defer s.Exit()

	code, body := httpGet(t, fmt.Sprintf("http://%s/v1/decode/tooshort", s.RealHTTPAddr()))
	test.Equal(t, 400, code)

	var em ErrMessage
	test.Nil(t, json.Unmarshal(body, &em))
	test.Equal(t, "ulid: bad data size when unmarshaling", em.Message)
}
