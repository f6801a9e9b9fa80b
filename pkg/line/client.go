package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultEndpoint = "https://api.line.me"

// Client is a minimal LINE Messaging API client covering reply and push.
type Client struct {
	ChannelToken string
	Endpoint     string
	HttpClient   *http.Client
}

func NewClient(channelToken string) *Client {
	return &Client{
		ChannelToken: channelToken,
		Endpoint:     defaultEndpoint,
		HttpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

// ReplyText answers an incoming event using its reply token.
func (c *Client) ReplyText(ctx context.Context, replyToken, text string) error {
	payload := replyRequest{
		ReplyToken: replyToken,
		Messages:   []textMessage{{Type: "text", Text: text}},
	}
	return c.post(ctx, "/v2/bot/message/reply", payload)
}

// PushText sends a message outside a reply window.
func (c *Client) PushText(ctx context.Context, to, text string) error {
	payload := pushRequest{
		To:       to,
		Messages: []textMessage{{Type: "text", Text: text}},
	}
	return c.post(ctx, "/v2/bot/message/push", payload)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+path, bytes.NewBuffer(payloadJson))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.ChannelToken)

	res, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		resBody, _ := io.ReadAll(res.Body)
		return fmt.Errorf("line api status error, got status %d with response body %s", res.StatusCode, string(resBody))
	}
	return nil
}
