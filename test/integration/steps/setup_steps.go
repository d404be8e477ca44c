package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/integration/adapters"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

const defaultTestPassword = "Password123!"

func (t *testContext) aUserExists(username, email, password string) error {
	hash, err := adapters.NewPasswordService().HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := testDB.DbConn.Create(user).Error; err != nil {
		return err
	}
	t.currentUserID = user.ID
	return nil
}

func (t *testContext) iAmLoggedInAsANewUser(username string) error {
	email := username + "@example.com"
	if err := t.aUserExists(username, email, defaultTestPassword); err != nil {
		return err
	}
	return t.iAmLoggedInAs(email, defaultTestPassword)
}

// iAmLoggedInAs logs in through the API without touching the scenario's
// last response.
func (t *testContext) iAmLoggedInAs(email, password string) error {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := t.client.Post(t.uri+"/api/v1/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
		User         struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login as %s returned %d", email, resp.StatusCode)
	}

	t.accessToken = body.Token
	t.refreshToken = body.RefreshToken
	if id, err := uuid.Parse(body.User.ID); err == nil {
		t.currentUserID = id
	}
	return nil
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	var user model.UserModel
	if err := testDB.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	t.resetToken = "test-reset-token-" + uuid.NewString()
	now := time.Now().UTC()
	return testDB.DbConn.Create(&model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}).Error
}

func (t *testContext) theUserIsDeactivated(email string) error {
	return testDB.DbConn.Model(&model.UserModel{}).
		Where("email = ?", email).
		Update("is_active", false).Error
}

// aBillWasDueDaysAgo seeds a bill directly, since the API rejects past due dates.
func (t *testContext) aBillWasDueDaysAgo(title, amount string, days int) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	now := time.Now().UTC()
	bill := &model.BillModel{
		ID:            uuid.New(),
		UserID:        t.currentUserID,
		Title:         title,
		Amount:        value,
		Category:      "utilities",
		DueDate:       now.AddDate(0, 0, -days),
		Frequency:     "monthly",
		IsActive:      true,
		PaymentMethod: "bank_transfer",
		ReminderDays:  3,
		LateFee:       decimal.Zero,
		Tags:          model.TagList{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := testDB.DbConn.Create(bill).Error; err != nil {
		return err
	}
	t.ids["bill"] = bill.ID.String()
	return nil
}

func (t *testContext) theEmailProviderRespondsWithStatus(status int) error {
	resendMock.SetResponse(http.MethodPost, "/emails", status, map[string]any{
		"statusCode": status,
		"message":    "provider error " + strconv.Itoa(status),
		"name":       "application_error",
	})
	return nil
}

func (t *testContext) theEmailWorkerRuns() error {
	emailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}
