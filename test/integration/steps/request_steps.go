package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

var datePlaceholder = regexp.MustCompile(`\{\{today([+-]\d+)?\}\}`)

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iSendRequestsToWithBody(count int, method, path string, body *godog.DocString) error {
	for i := 0; i < count; i++ {
		if err := t.iSendARequestToWithBody(method, path, body); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	for resource, id := range t.ids {
		content = strings.ReplaceAll(content, "{{"+resource+"_id}}", id)
	}

	today := time.Now().UTC()
	return datePlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		offset := 0
		if sub := datePlaceholder.FindStringSubmatch(match); sub[1] != "" {
			offset, _ = strconv.Atoi(sub[1])
		}
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, header: resp.Header}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)
	return nil
}

// captureIDs remembers the ids of created resources so later steps can use
// {{expense_id}}, {{bill_id}} and {{goal_id}}.
func (t *testContext) captureIDs(body map[string]any) {
	for _, resource := range []string{"expense", "bill", "goal"} {
		object, ok := body[resource].(map[string]any)
		if !ok {
			continue
		}
		if id, ok := object["id"].(string); ok {
			t.ids[resource] = id
		}
	}

	if token, ok := body["token"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := body["refreshToken"].(string); ok && token != "" {
		t.refreshToken = token
	}
}

func (t *testContext) mustResponse() (map[string]any, error) {
	if t.response == nil {
		return nil, fmt.Errorf("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}
