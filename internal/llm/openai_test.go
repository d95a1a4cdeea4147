package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type OpenAIClientTestSuite struct {
	suite.Suite
}

func (suite *OpenAIClientTestSuite) newServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodPost, r.Method)
		suite.Equal("/responses", r.URL.Path)
		suite.Equal("Bearer test-key", r.Header.Get("Authorization"))
		suite.Equal("application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func (suite *OpenAIClientTestSuite) TestGenerateSuccess() {
	server := suite.newServer(http.StatusOK, `{
		"id": "resp_123",
		"model": "gpt-4o-mini",
		"status": "completed",
		"output": [
			{"type": "reasoning", "content": []},
			{"type": "message", "content": [
				{"type": "output_text", "text": "You spent wisely "},
				{"type": "output_text", "text": "this month."}
			]}
		]
	}`)
	defer server.Close()

	client := NewOpenAIClient("test-key", server.URL, 5*time.Second)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Model:        "gpt-4o-mini",
		Instructions: "You are a financial coach.",
		Input:        "period: 2026-07",
	})

	suite.NoError(err)
	suite.Equal("resp_123", resp.ID)
	suite.Equal("gpt-4o-mini", resp.Model)
	suite.Equal("You spent wisely this month.", resp.OutputText)
	suite.Empty(resp.Err)
}

func (suite *OpenAIClientTestSuite) TestGenerateSendsRequestBody() {
	var captured openAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.NoError(json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"id": "resp_1", "model": "m", "output": []}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key", server.URL, 5*time.Second)

	_, err := client.Generate(context.Background(), GenerateRequest{
		Model:        "gpt-4o-mini",
		Instructions: "coach",
		Input:        "data",
	})

	suite.NoError(err)
	suite.Equal("gpt-4o-mini", captured.Model)
	suite.Equal("coach", captured.Instructions)
	suite.Equal("data", captured.Input)
}

func (suite *OpenAIClientTestSuite) TestGenerateAPIError() {
	server := suite.newServer(http.StatusOK, `{
		"id": "resp_456",
		"model": "gpt-4o-mini",
		"status": "failed",
		"error": {"code": "server_error", "message": "something broke"},
		"output": []
	}`)
	defer server.Close()

	client := NewOpenAIClient("test-key", server.URL, 5*time.Second)

	resp, err := client.Generate(context.Background(), GenerateRequest{Model: "gpt-4o-mini", Input: "x"})

	suite.NoError(err)
	suite.Equal("something broke", resp.Err)
	suite.Equal("resp_456", resp.ID)
}

func (suite *OpenAIClientTestSuite) TestGenerateIncompleteResponse() {
	server := suite.newServer(http.StatusOK, `{
		"id": "resp_789",
		"model": "gpt-4o-mini",
		"status": "incomplete",
		"incomplete_details": {"reason": "max_output_tokens"},
		"output": [
			{"type": "message", "content": [{"type": "output_text", "text": "partial"}]}
		]
	}`)
	defer server.Close()

	client := NewOpenAIClient("test-key", server.URL, 5*time.Second)

	resp, err := client.Generate(context.Background(), GenerateRequest{Model: "gpt-4o-mini", Input: "x"})

	suite.NoError(err)
	suite.Equal("incomplete response: max_output_tokens", resp.Err)
	suite.Equal("partial", resp.OutputText)
}

func (suite *OpenAIClientTestSuite) TestGenerateHTTPErrorStatus() {
	server := suite.newServer(http.StatusTooManyRequests, `{"error": {"message": "rate limited"}}`)
	defer server.Close()

	client := NewOpenAIClient("test-key", server.URL, 5*time.Second)

	resp, err := client.Generate(context.Background(), GenerateRequest{Model: "gpt-4o-mini", Input: "x"})

	suite.Error(err)
	suite.Nil(resp)
	suite.Contains(err.Error(), "429")
}

func (suite *OpenAIClientTestSuite) TestGenerateContextCancelled() {
	server := suite.newServer(http.StatusOK, `{}`)
	defer server.Close()

	client := NewOpenAIClient("test-key", server.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := client.Generate(ctx, GenerateRequest{Model: "gpt-4o-mini", Input: "x"})

	suite.Error(err)
	suite.Nil(resp)
}

func (suite *OpenAIClientTestSuite) TestDefaultBaseURL() {
	client := NewOpenAIClient("test-key", "", 5*time.Second)
	suite.Equal(defaultOpenAIBaseURL, client.baseURL)
}

func TestOpenAIClientTestSuite(t *testing.T) {
	suite.Run(t, new(OpenAIClientTestSuite))
}
