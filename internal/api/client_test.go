package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/santoshipatro12/ai-financial-coach/internal/state"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, testLogger())
}

func TestSendChatMessageEnvelope(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody ChatRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ChatResponse{Message: "hi", AIPowered: true})
	})

	resp, err := c.SendChatMessage(context.Background(), ChatRequest{
		Message: "how am I doing?",
		Context: ChatContext{Income: 5000},
	})
	if err != nil {
		t.Fatalf("SendChatMessage: %v", err)
	}
	if gotPath != "/chat" {
		t.Errorf("path = %q, want /chat", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotContentType)
	}
	if gotBody.Message != "how am I doing?" || gotBody.Context.Income != 5000 {
		t.Errorf("request body = %+v", gotBody)
	}
	if resp.Message != "hi" || !resp.AIPowered {
		t.Errorf("response = %+v", resp)
	}
}

func TestErrorBodySurfacedAsAPIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid debt data"})
	})

	_, err := c.AnalyzeDebt(context.Background(), nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Invalid debt data" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestErrorWithoutBodyGetsGenericMessage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.LoadSampleData(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Message != "API request failed" {
		t.Errorf("message = %q, want generic fallback", apiErr.Message)
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, testLogger())
	_, err := c.GetDashboardData(context.Background())
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %v, want NetworkError", err)
	}
}

func TestPayoffPlanDefaultsToAvalanche(t *testing.T) {
	var gotMethod string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req PayoffPlanRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotMethod = req.Method
		json.NewEncoder(w).Encode(PayoffPlan{Method: req.Method})
	})

	if _, err := c.GetDebtPayoffPlan(context.Background(), PayoffPlanRequest{
		Debts: []state.Debt{{Name: "Card", Balance: 100, Rate: 20, MinPayment: 10}},
	}); err != nil {
		t.Fatalf("GetDebtPayoffPlan: %v", err)
	}
	if gotMethod != MethodAvalanche {
		t.Errorf("method = %q, want %q", gotMethod, MethodAvalanche)
	}

	if _, err := c.GetDebtPayoffPlan(context.Background(), PayoffPlanRequest{Method: MethodSnowball}); err != nil {
		t.Fatalf("GetDebtPayoffPlan: %v", err)
	}
	if gotMethod != MethodSnowball {
		t.Errorf("method = %q, want %q", gotMethod, MethodSnowball)
	}
}

func TestUploadCSVMultipart(t *testing.T) {
	var gotField, gotFilename, gotContent string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer file.Close()
		gotField = "file"
		gotFilename = header.Filename
		data, _ := io.ReadAll(file)
		gotContent = string(data)
		json.NewEncoder(w).Encode(UploadResult{
			Success:  true,
			Expenses: []state.Expense{{Amount: 12.5, Category: "Food"}},
			Count:    1,
		})
	})

	res, err := c.UploadCSV(context.Background(), "january.csv", strings.NewReader("date,amount\n2024-01-01,12.5\n"))
	if err != nil {
		t.Fatalf("UploadCSV: %v", err)
	}
	if gotField != "file" || gotFilename != "january.csv" {
		t.Errorf("field/filename = %q/%q", gotField, gotFilename)
	}
	if !strings.Contains(gotContent, "12.5") {
		t.Errorf("uploaded content = %q", gotContent)
	}
	if !res.Success || len(res.Expenses) != 1 {
		t.Errorf("result = %+v", res)
	}
}

func TestDashboardPartialAbsentFields(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"income": 5000, "expenses": []}`)
	})
	data, err := c.GetDashboardData(context.Background())
	if err != nil {
		t.Fatalf("GetDashboardData: %v", err)
	}
	p := data.Partial()
	if p.Income == nil || *p.Income != 5000 {
		t.Errorf("income = %v, want 5000", p.Income)
	}
	if p.Expenses == nil {
		t.Error("expenses present in payload should be non-nil")
	}
	if p.Debts != nil {
		t.Error("absent debts should stay nil so merge leaves them untouched")
	}
}
