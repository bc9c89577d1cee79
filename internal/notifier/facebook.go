package notifier

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dghubble/sling"
	"github.com/sirupsen/logrus"
)

const (
	graphBaseURL = "https://graph.facebook.com/"
	graphTimeout = 10 * time.Second

	// DefaultGraphVersion is the Graph API version used when none is
	// configured.
	DefaultGraphVersion = "v23.0"
)

// FacebookNotifier posts announcements to a Facebook Page feed through
// the Graph API. The access token must carry the pages_manage_posts
// permission for the page.
type FacebookNotifier struct {
	pageID      string
	accessToken string
	version     string
	baseURL     string
	httpClient  *http.Client
}

// NewFacebookNotifier creates a notifier for the given page. Page ID and
// access token are passed in by the caller, which sources them from
// whatever secret store is appropriate.
func NewFacebookNotifier(pageID, accessToken, version string) (*FacebookNotifier, error) {
	if pageID == "" {
		return nil, fmt.Errorf("page ID is required")
	}
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	if version == "" {
		version = DefaultGraphVersion
	}

	return &FacebookNotifier{
		pageID:      pageID,
		accessToken: accessToken,
		version:     version,
		baseURL:     graphBaseURL,
		httpClient: &http.Client{
			Timeout: graphTimeout,
		},
	}, nil
}

// feedParams is form-encoded into the POST body.
type feedParams struct {
	Message     string `url:"message"`
	AccessToken string `url:"access_token"`
}

// feedResponse is the Graph API success body for a feed post.
type feedResponse struct {
	ID string `json:"id"`
}

// graphError is the Graph API error envelope.
type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Publish posts the message to the page feed. A non-2xx response is
// logged with the Graph error body and returned as an error; no retry
// is attempted.
func (n *FacebookNotifier) Publish(message string) error {
	if message == "" {
		return fmt.Errorf("message text is required")
	}

	var success feedResponse
	var failure graphError

	resp, err := sling.New().
		Client(n.httpClient).
		Base(n.baseURL).
		Post(fmt.Sprintf("%s/%s/feed", n.version, n.pageID)).
		BodyForm(&feedParams{Message: message, AccessToken: n.accessToken}).
		Receive(&success, &failure)
	if err != nil {
		return fmt.Errorf("posting to page feed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"type":   failure.Error.Type,
			"code":   failure.Error.Code,
		}).Errorf("❌ Facebook-post feilet: %s", failure.Error.Message)
		return fmt.Errorf("graph API error (status %d): %s", resp.StatusCode, failure.Error.Message)
	}

	logrus.WithField("post_id", success.ID).Info("✅ Facebook-post publisert")
	return nil
}
