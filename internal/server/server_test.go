package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Request to %s failed: %v", url, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(NewHandler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("Health check failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

func TestExecOneShot(t *testing.T) {
	ts := httptest.NewServer(NewHandler())
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/exec", runRequest{Source: "x = 5 / 2"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var rr runResponse
	decodeJSON(t, resp, &rr)

	if !rr.Success {
		t.Error("Expected success")
	}
	if len(rr.Results) != 1 || rr.Results[0] != "2.5" {
		t.Errorf("Expected results [2.5], got %v", rr.Results)
	}
	if rr.Variables["x"] != "2.5" {
		t.Errorf("Expected x = 2.5, got %v", rr.Variables)
	}
}

func TestExecOneShotIsStateless(t *testing.T) {
	ts := httptest.NewServer(NewHandler())
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/exec", runRequest{Source: "x = 1"})
	resp.Body.Close()

	// x from the previous call must not be visible.
	resp = postJSON(t, ts.URL+"/exec", runRequest{Source: "y = x + 1"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for undefined variable, got %d", resp.StatusCode)
	}
}

func TestExecRejectsBadSource(t *testing.T) {
	ts := httptest.NewServer(NewHandler())
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/exec", runRequest{Source: "x = 5 $ 2"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for lex error, got %d", resp.StatusCode)
	}
}

func TestSessionLifecycle(t *testing.T) {
	ts := httptest.NewServer(NewHandler())
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/sessions", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201 creating session, got %d", resp.StatusCode)
	}

	var sr sessionResponse
	decodeJSON(t, resp, &sr)
	if sr.SessionID == "" {
		t.Fatal("Expected a session id")
	}

	sessionURL := ts.URL + "/sessions/" + sr.SessionID

	resp = postJSON(t, sessionURL+"/exec", runRequest{Source: "x = 10"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 executing in session, got %d", resp.StatusCode)
	}

	// The session keeps its environment across calls.
	resp = postJSON(t, sessionURL+"/exec", runRequest{Source: "y = x + 1"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 for follow-up statement, got %d", resp.StatusCode)
	}

	var rr runResponse
	decodeJSON(t, resp, &rr)
	if len(rr.Results) != 1 || rr.Results[0] != "11" {
		t.Errorf("Expected results [11], got %v", rr.Results)
	}

	envResp, err := http.Get(sessionURL + "/env")
	if err != nil {
		t.Fatalf("Env request failed: %v", err)
	}

	var env map[string]string
	decodeJSON(t, envResp, &env)
	if env["x"] != "10" || env["y"] != "11" {
		t.Errorf("Expected x = 10 and y = 11, got %v", env)
	}

	req, err := http.NewRequest(http.MethodDelete, sessionURL, nil)
	if err != nil {
		t.Fatalf("Failed to build delete request: %v", err)
	}
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Delete request failed: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected 204 deleting session, got %d", delResp.StatusCode)
	}

	resp = postJSON(t, sessionURL+"/exec", runRequest{Source: "x = 1"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 after session delete, got %d", resp.StatusCode)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	ts := httptest.NewServer(NewHandler())
	defer ts.Close()

	var first, second sessionResponse
	decodeJSON(t, postJSON(t, ts.URL+"/sessions", nil), &first)
	decodeJSON(t, postJSON(t, ts.URL+"/sessions", nil), &second)

	resp := postJSON(t, ts.URL+"/sessions/"+first.SessionID+"/exec", runRequest{Source: "x = 1"})
	resp.Body.Close()

	// x must not leak into the second session.
	resp = postJSON(t, ts.URL+"/sessions/"+second.SessionID+"/exec", runRequest{Source: "y = x + 1"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for undefined variable in fresh session, got %d", resp.StatusCode)
	}
}
