package service

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestAddReviewRequest_Decode(t *testing.T) {
	tests := []struct {
		body       string
		wantUser   looseValue
		wantRating looseValue
	}{
		{`{"user_id":"u1","rating":8}`, "u1", "8"},
		{`{"user_id":"u1","rating":"7"}`, "u1", "7"},
		{`{"user_id":123,"rating":7.50}`, "123", "7.5"},
		{`{"user_id":null,"rating":0}`, "", ""},
		{`{"user_id":false,"rating":true}`, "", "true"},
		{`{"user_id":{"a":1},"rating":[1]}`, `{"a":1}`, `[1]`},
		{`{"comment":"no fields"}`, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req AddReviewRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if req.UserID != tt.wantUser || req.Rating != tt.wantRating {
				t.Errorf("got %q/%q, want %q/%q", req.UserID, req.Rating, tt.wantUser, tt.wantRating)
			}
		})
	}
}

func TestReviewRating(t *testing.T) {
	tests := []struct {
		in      looseValue
		want    float64
		wantErr bool
	}{
		{"7", 7, false},
		{" 9.5 ", 9.5, false},
		{"true", 1, false},
		{"11", 11, false},
		{"abc", 0, true},
		{"0", 0, true},
		{"[5]", 0, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, err := reviewRating(tt.in)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("reviewRating(%q) = %v, %v", tt.in, got, err)
			}
		})
	}

	if _, err := reviewUserID(`{"id":1}`); err == nil {
		t.Error("object user id accepted")
	}
	if got, err := reviewUserID("123"); err != nil || got != "123" {
		t.Errorf("reviewUserID = %q, %v", got, err)
	}
}
