package calendar

import (
	"bytes"
	"context"
	"medxbay-service/internal/app/config"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type calendarClient struct {
	BaseUrl    string
	APIKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type createEventRequest struct {
	Summary     string   `json:"summary"`
	Description string   `json:"description,omitempty"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Attendees   []string `json:"attendees,omitempty"`
}

type createEventResponse struct {
	ID       string `json:"id"`
	MeetLink string `json:"meet_link"`
}

func NewCalendarClient(internalConfig *config.InternalConfig) contracts.CalendarService {
	rps := internalConfig.Calendar.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &calendarClient{
		BaseUrl:    internalConfig.Calendar.BaseUrl,
		APIKey:     internalConfig.Calendar.APIKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (c *calendarClient) CreateEvent(ctx context.Context, event *contracts.CalendarEvent) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}

	payload := createEventRequest{
		Summary:     event.Summary,
		Description: event.Description,
		Start:       event.Start.Format(time.RFC3339),
		End:         event.End.Format(time.RFC3339),
		Attendees:   event.Attendees,
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+"/events", bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCalendarCreateEvent)
	}

	eventResponse := new(createEventResponse)
	err = json.NewDecoder(resp.Body).Decode(eventResponse)
	if err != nil {
		return "", exceptions.ErrDecodeHTTPResponse(err, "calendar")
	}

	return eventResponse.MeetLink, nil
}
