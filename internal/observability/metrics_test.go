package observability

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danmuck/fixwire/internal/protocol"
	"github.com/danmuck/fixwire/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	before := testutil.ToFloat64(codecRecords.WithLabelValues("metrics-test", DirectionDecode, "invalid_input"))
	RecordCodec("metrics-test", DirectionDecode, 16, nil)
	RecordCodec("metrics-test", DirectionDecode, 16, fmt.Errorf("wrapped: %w", protocol.ErrInvalidInput))
	RecordCodec("metrics-test", DirectionEncode, 16, errors.Join(protocol.ErrInvalidData))

	after := testutil.ToFloat64(codecRecords.WithLabelValues("metrics-test", DirectionDecode, "invalid_input"))
	if after-before != 1 {
		t.Fatalf("expected one invalid_input decode, got %v", after-before)
	}
	if got := testutil.ToFloat64(codecBytes.WithLabelValues("metrics-test", DirectionDecode)); got != 16 {
		t.Fatalf("expected 16 decoded bytes, got %v", got)
	}
}

func TestHandlerExposesCodecMetrics(t *testing.T) {
	testlog.Start(t)
	RecordCodec("metrics-http", DirectionEncode, 4, nil)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `fixwire_codec_records_total{direction="encode",result="ok",schema="metrics-http"}`) {
		t.Fatalf("codec metric missing from exposition")
	}
}
