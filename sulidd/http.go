package sulidd

import (
	"bytes"
	"net/http"
	"net/http/pprof"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sulidio/sulid"
	"github.com/sulidio/sulid/internal/http_api"
	"github.com/sulidio/sulid/internal/version"
)

type httpServer struct {
	sulidd *SULIDd
	router http.Handler
}

func newHTTPServer(s *SULIDd) *httpServer {
	log := http_api.Log(s.logf)

	router := httprouter.New()
	router.HandleMethodNotAllowed = true
	router.PanicHandler = http_api.LogPanicHandler(s.logf)
	router.NotFound = http_api.LogNotFoundHandler(s.logf)
	router.MethodNotAllowed = http_api.LogMethodNotAllowedHandler(s.logf)
	hs := &httpServer{
		sulidd: s,
		router: router,
	}

	router.Handle("GET", "/ping", http_api.Decorate(hs.pingHandler, log, http_api.PlainText))
	router.Handle("GET", "/info", http_api.Decorate(hs.doInfo, log, http_api.V1))

	// v1 negotiate
	router.Handle("GET", "/id", http_api.Decorate(hs.doID, log, http_api.PlainText))
	router.Handle("GET", "/v1/id", http_api.Decorate(hs.doIDV1, log, http_api.V1))
	router.Handle("GET", "/v1/decode/:id", http_api.Decorate(hs.doDecode, log, http_api.V1))

	// debug
	router.HandlerFunc("GET", "/debug/pprof/", pprof.Index)
	router.HandlerFunc("GET", "/debug/pprof/cmdline", pprof.Cmdline)
	router.HandlerFunc("GET", "/debug/pprof/symbol", pprof.Symbol)
	router.HandlerFunc("GET", "/debug/pprof/profile", pprof.Profile)
	router.Handler("GET", "/debug/pprof/heap", pprof.Handler("heap"))
	router.Handler("GET", "/debug/pprof/goroutine", pprof.Handler("goroutine"))
	router.Handler("GET", "/debug/pprof/block", pprof.Handler("block"))

	return hs
}

func (s *httpServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

func (s *httpServer) pingHandler(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	return "OK", nil
}

func (s *httpServer) doInfo(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	return struct {
		Version string `json:"version"`
	}{version.Binary}, nil
}

func (s *httpServer) getCount(req *http.Request) (int, error) {
	reqParams, err := http_api.NewReqParams(req)
	if err != nil {
		return 0, http_api.Err{Code: 400, Text: "INVALID_REQUEST"}
	}

	count := 1
	if c, err := reqParams.Get("count"); err == nil {
		count, err = strconv.Atoi(c)
		if err != nil || count < 1 {
			return 0, http_api.Err{Code: 400, Text: "INVALID_COUNT"}
		}
	}
	if int64(count) > s.sulidd.opts.MaxBatchSize {
		return 0, http_api.Err{Code: 400, Text: "COUNT_TOO_LARGE"}
	}
	return count, nil
}

func (s *httpServer) doID(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	count, err := s.getCount(req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(count * (sulid.EncodedSize + 1))
	b := make([]byte, 0, sulid.EncodedSize)
	for i := 0; i < count; i++ {
		b = s.sulidd.generator.Generate().AppendFormat(b[:0])
		buf.Write(b)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

type idsResponse struct {
	IDVersion    int      `json:"id_version"`
	DataCenterID uint8    `json:"data_center_id"`
	MachineID    uint8    `json:"machine_id"`
	WorkerID     uint16   `json:"worker_id"`
	IDs          []string `json:"ids"`
}

func (s *httpServer) doIDV1(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	count, err := s.getCount(req)
	if err != nil {
		return nil, err
	}

	g := s.sulidd.generator
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, g.Generate().String())
	}
	return idsResponse{
		IDVersion:    int(g.Version()),
		DataCenterID: g.DataCenterID(),
		MachineID:    g.MachineID(),
		WorkerID:     g.WorkerID(),
		IDs:          ids,
	}, nil
}

type decodeResponse struct {
	ID           string `json:"id"`
	TimestampMs  uint64 `json:"timestamp_ms"`
	Time         string `json:"time"`
	RandomHi     uint64 `json:"random_hi"`
	RandomLo     uint64 `json:"random_lo"`
	DataCenterID uint8  `json:"data_center_id"`
	MachineID    uint8  `json:"machine_id"`
	WorkerID     uint16 `json:"worker_id"`
}

func (s *httpServer) doDecode(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	id, err := sulid.Parse(ps.ByName("id"))
	if err != nil {
		return nil, http_api.Err{Code: 400, Text: err.Error()}
	}

	random := id.Random()
	return decodeResponse{
		ID:           id.String(),
		TimestampMs:  id.Timestamp(),
		Time:         id.Time().UTC().Format(time.RFC3339Nano),
		RandomHi:     random.Hi,
		RandomLo:     random.Lo,
		DataCenterID: id.DataCenterID(),
		MachineID:    id.MachineID(),
		WorkerID:     id.WorkerID(),
	}, nil
}
