package notifier

import (
	"fmt"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/sirupsen/logrus"
)

// Twitter limit is 280 characters.
const tweetLimit = 280

// TwitterCredentials holds the OAuth1 keys for the posting account.
type TwitterCredentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// TwitterNotifier posts announcements as tweets. Alternate channel for
// clubs announcing on Twitter instead of a Facebook page.
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a Twitter notifier from caller-supplied
// credentials.
func NewTwitterNotifier(creds TwitterCredentials) (*TwitterNotifier, error) {
	if creds.APIKey == "" || creds.APISecret == "" || creds.AccessToken == "" || creds.AccessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials")
	}

	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	httpClient := config.Client(oauth1.NoContext, token)

	return &TwitterNotifier{client: twitter.NewClient(httpClient)}, nil
}

// Publish posts the message as a tweet, truncating it to the tweet
// length limit.
func (n *TwitterNotifier) Publish(message string) error {
	tweet := truncateTweet(message)

	_, _, err := n.client.Statuses.Update(tweet, nil)
	if err != nil {
		return fmt.Errorf("posting tweet: %w", err)
	}

	logrus.Info("✅ Tweet publisert")
	return nil
}

func truncateTweet(message string) string {
	r := []rune(message)
	if len(r) <= tweetLimit {
		return message
	}
	return string(r[:tweetLimit-3]) + "..."
}
