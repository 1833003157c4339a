package conf

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: `"3s"`, want: 3 * time.Second},
		{in: `"1h"`, want: time.Hour},
		{in: `"0.2s"`, want: 200 * time.Millisecond},
		{in: `"3600"`, want: time.Hour},
		{in: `5`, want: 5 * time.Second},
		{in: `1.5`, want: 1500 * time.Millisecond},
		{in: `null`, want: 0},
		{in: `"soon"`, wantErr: true},
		{in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				if err == nil {
					t.Errorf("want error, got %v", d.Duration)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if d.Duration != tt.want {
				t.Errorf("got %v, want %v", d.Duration, tt.want)
			}
		})
	}
}

func TestBootstrapScan(t *testing.T) {
	raw := `{
		"server": {"http": {"addr": "0.0.0.0:8080", "timeout": "10s"}, "hide_error_details": true},
		"data": {
			"database": {"source": "host=db", "max_lifetime": "1h"},
			"redis": {"addr": "cache:6379", "read_timeout": 0.2},
			"cache": {"metadata_ttl": "30m"}
		}
	}`
	var bc Bootstrap
	if err := json.Unmarshal([]byte(raw), &bc); err != nil {
		t.Fatal(err)
	}
	bc.Defaults()

	if bc.Server.Http.Addr != "0.0.0.0:8080" || bc.Server.Http.Timeout.AsDuration() != 10*time.Second {
		t.Errorf("http = %+v", bc.Server.Http)
	}
	if !bc.Server.HideErrorDetails {
		t.Error("hide_error_details not read")
	}
	if bc.Data.Redis.ReadTimeout.AsDuration() != 200*time.Millisecond {
		t.Errorf("read timeout = %v", bc.Data.Redis.ReadTimeout)
	}
	if bc.Data.Cache.MetadataTtl.AsDuration() != 30*time.Minute {
		t.Errorf("ttl = %v", bc.Data.Cache.MetadataTtl)
	}
	// untouched sections fall back to defaults
	if bc.Data.Mongo.Database != "streaming" {
		t.Errorf("mongo database = %q", bc.Data.Mongo.Database)
	}
	if bc.Data.Bootstrap.MaxAttempts != 10 || bc.Data.Bootstrap.RetryDelay.AsDuration() != 3*time.Second {
		t.Errorf("bootstrap = %+v", bc.Data.Bootstrap)
	}
	if bc.Log.Level != "info" {
		t.Errorf("log level = %q", bc.Log.Level)
	}
}

func TestDefaultsOnEmpty(t *testing.T) {
	var bc Bootstrap
	bc.Defaults()

	if bc.Server.Http.Addr != "0.0.0.0:3000" {
		t.Errorf("addr = %q", bc.Server.Http.Addr)
	}
	if bc.Data.Redis.Addr != "127.0.0.1:6379" {
		t.Errorf("redis = %q", bc.Data.Redis.Addr)
	}
	if bc.Data.Cache.MetadataTtl.AsDuration() != time.Hour {
		t.Errorf("ttl = %v", bc.Data.Cache.MetadataTtl)
	}
	var nilDuration *Duration
	if nilDuration.AsDuration() != 0 {
		t.Error("nil duration not zero")
	}
}
