// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/grove/backend/internal/infra/dependency"
	"github.com/grove/backend/internal/integration/persistence"
	"github.com/grove/backend/internal/integration/persistence/model"
	"github.com/grove/backend/test/integration/mock"
)

const testRecordKey = "grove_user_data"

// testContext holds the per-scenario state: the server under test, its
// storage, the frozen clock and the last response.
type testContext struct {
	server        *httptest.Server
	db            *mock.Db
	timeMock      *mock.Time
	client        *http.Client
	response      *response
	currentGoalID string
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		db:       mock.NewDb(),
		timeMock: mock.NewTime(),
		client:   &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.before(); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// Storage setup steps
	ctx.Given(`^the stored record is:$`, test.theStoredRecordIs)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)

	// Storage assertion steps
	ctx.Then(`^the db should contain (\d+) records in the "([^"]*)" table$`, test.theDbShouldContainRecordsInTheTable)
	ctx.Then(`^the stored record field "([^"]*)" should be "([^"]*)"$`, test.theStoredRecordFieldShouldBe)
}

func (t *testContext) before() error {
	t.response = nil
	t.currentGoalID = ""
	t.timeMock.SetCurrentTime(time.Now())

	if err := t.db.Reset(); err != nil {
		return err
	}

	repo := persistence.NewRecordRepository(t.db.DbConn, testRecordKey)
	injector := dependency.NewInjector(repo, t.timeMock, func() bool { return true })
	engine := injector.Router.Setup("test")

	if t.server != nil {
		t.server.Close()
	}
	t.server = httptest.NewServer(engine)
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) theCurrentDateIs(date string) error {
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	// Noon keeps the whole local day on one side of rolling week windows.
	t.timeMock.SetCurrentTime(parsed.Add(12 * time.Hour))
	return nil
}

func (t *testContext) theStoredRecordIs(body *godog.DocString) error {
	var probe any
	if err := json.Unmarshal([]byte(body.Content), &probe); err != nil {
		return fmt.Errorf("stored record is not valid JSON: %w", err)
	}

	record := &model.UserRecordModel{
		Key:       testRecordKey,
		Data:      []byte(body.Content),
		UpdatedAt: time.Now(),
	}
	return t.db.DbConn.Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error
}

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

func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var parsed any
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = parsed

	// Capture the goal ID from creation responses for {{goal_id}} paths.
	if obj, ok := parsed.(map[string]any); ok {
		if id, ok := obj["id"].(string); ok && id != "" {
			t.currentGoalID = id
		}
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		if expectedValue == "null" {
			return nil
		}
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if value := getFieldValue(t.response.body, field); value != nil {
		return fmt.Errorf("field %q unexpectedly present with value %v", field, value)
	}
	return nil
}

func (t *testContext) theDbShouldContainRecordsInTheTable(quantity int, table string) error {
	if table != "user_records" {
		return fmt.Errorf("unknown table %q", table)
	}
	count, err := t.db.CountRecords()
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d records in %q, got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theStoredRecordFieldShouldBe(field, expectedValue string) error {
	var record model.UserRecordModel
	if err := t.db.DbConn.First(&record, "key = ?", testRecordKey).Error; err != nil {
		return fmt.Errorf("stored record not found: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(record.Data, &parsed); err != nil {
		return fmt.Errorf("stored record is not valid JSON: %w", err)
	}

	value := getFieldValue(parsed, field)
	if value == nil {
		if expectedValue == "null" {
			return nil
		}
		return fmt.Errorf("field %q not found in stored record: %s", field, string(record.Data))
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("stored field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

// getFieldValue walks a dot-separated path through nested JSON. Numeric path
// segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	fields := strings.Split(dotSeparatedField, ".")
	field := object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
