package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/festive-rides/booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Resend API (https://resend.com).
// Отправляет подтверждающие письма пассажиру и администратору.
type Client struct {
	baseURL    string
	apiKey     string
	fromEmail  string
	adminEmail string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Resend
func NewClient(baseURL, apiKey, fromEmail, adminEmail string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		adminEmail: adminEmail,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmed отправляет два письма по созданному бронированию:
// подтверждение пассажиру и уведомление администратору. Ошибки обеих
// отправок объединяются; частичный успех логируется.
func (c *Client) SendBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	passengerErr := c.send(ctx, sendEmailRequest{
		From:    c.fromEmail,
		To:      []string{booking.PassengerEmail},
		Subject: fmt.Sprintf("🎄 Ride Confirmed - %s", booking.BookingReference),
		HTML:    passengerConfirmationTemplate(booking),
	})
	if passengerErr != nil {
		c.log.Error("SendBookingConfirmed: passenger email failed for %s: %v",
			booking.BookingReference, passengerErr)
	} else {
		c.log.Info("SendBookingConfirmed: passenger email sent for %s", booking.BookingReference)
	}

	adminErr := c.send(ctx, sendEmailRequest{
		From:    c.fromEmail,
		To:      []string{c.adminEmail},
		Subject: fmt.Sprintf("New Booking: %s - %s", booking.BookingReference, booking.TimeSlot),
		HTML:    adminNotificationTemplate(booking),
	})
	if adminErr != nil {
		c.log.Error("SendBookingConfirmed: admin email failed for %s: %v",
			booking.BookingReference, adminErr)
	} else {
		c.log.Info("SendBookingConfirmed: admin email sent for %s", booking.BookingReference)
	}

	return errors.Join(passengerErr, adminErr)
}

// send выполняет POST /emails
func (c *Client) send(ctx context.Context, email sendEmailRequest) error {
	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var result sendEmailResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, resp.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(body))
}
