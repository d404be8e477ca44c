// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pennywise/backend/config"
	"github.com/pennywise/backend/internal/infra/dependency"
	"github.com/pennywise/backend/internal/integration/email"
	"github.com/pennywise/backend/internal/integration/persistence/model"
	"github.com/pennywise/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// Shared across scenarios; the suite runs sequentially.
var (
	serverInit  sync.Once
	server      *httptest.Server
	testDB      *mock.Db
	testRedis   *redis.Client
	resendMock  *mock.ApiMock
	emailWorker *email.Worker
)

type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response

	accessToken  string
	refreshToken string
	resetToken   string

	currentUserID uuid.UUID
	// ids captured from the latest create response, keyed by resource
	ids map[string]string
}

type response struct {
	status int
	header http.Header
	body   any
}

// InitializeTestSuite starts the shared server before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(startServer)

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
		if resendMock != nil {
			resendMock.Close()
		}
	})
}

func startServer() {
	serverInit.Do(func() {
		gin.SetMode(gin.TestMode)

		testDB = mock.NewDb(model.All())
		testRedis = mock.NewRedis()
		resendMock = mock.NewApiServer()
		resendMock.Start()

		injector, err := dependency.NewInjector(testConfig(resendMock.GetUrl()), testDB.DbConn, testRedis, dependency.Checks{
			DB:    func() bool { return testDB != nil },
			Cache: func() bool { return mock.PingRedis(testRedis) },
		})
		if err != nil {
			panic(fmt.Sprintf("failed to wire dependencies: %v", err))
		}

		emailWorker = injector.EmailWorker
		server = httptest.NewServer(injector.Router.Setup("test"))
	})
}

func testConfig(resendURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		JWT: config.JWTConfig{
			Secret:             testJWTSecret,
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: 7 * 24 * time.Hour,
		},
		RateLimit: config.RateLimitConfig{
			Enabled:                true,
			LoginAttempts:          5,
			ForgotPasswordAttempts: 3,
			Window:                 15 * time.Minute,
		},
		Email: config.EmailConfig{
			ResendAPIKey:  "re_test_key",
			ResendBaseURL: resendURL,
			FromName:      "Pennywise",
			FromEmail:     "no-reply@pennywise.test",
			AppBaseURL:    "http://localhost:3000",
			BatchSize:     10,
		},
	}
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startServer()

	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user "([^"]*)" exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExists)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^I am logged in as a new user "([^"]*)"$`, test.iAmLoggedInAsANewUser)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^the user "([^"]*)" is deactivated$`, test.theUserIsDeactivated)

	// Data setup steps
	ctx.Given(`^a bill "([^"]*)" of "([^"]*)" was due (\d+) days ago$`, test.aBillWasDueDaysAgo)
	ctx.Given(`^the email provider responds with status (\d+)$`, test.theEmailProviderRespondsWithStatus)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, test.iSendRequestsToWithBody)
	ctx.When(`^the email worker runs$`, test.theEmailWorkerRuns)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should exist$`, test.theResponseHeaderShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// External service assertion steps
	ctx.Then(`^the email provider should have received (\d+) requests?$`, test.theEmailProviderShouldHaveReceivedRequests)
	ctx.Then(`^the email provider request (\d+) field "([^"]*)" should be "([^"]*)"$`, test.theEmailProviderRequestFieldShouldBe)
}

func (t *testContext) before() error {
	t.uri = server.URL
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.currentUserID = uuid.Nil
	t.ids = make(map[string]string)

	resendMock.Reset()
	resendMock.SetResponse(http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "re_" + uuid.NewString()})

	if err := mock.ClearRedis(testRedis); err != nil {
		return err
	}
	return testDB.Reset()
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}
