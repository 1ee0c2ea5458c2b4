package mugloar

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"mugloarbot/internal/app/ports"
	"mugloarbot/internal/domain/quest"
	"mugloarbot/internal/domain/session"
	"mugloarbot/internal/domain/shop"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://dragonsofmugloar.com"
	apiPrefix      = "/api/v2"
)

type Sender interface {
	Send(ctx context.Context, url, method string) (gjson.Result, error)
}

// Client maps the game endpoints onto domain types.
type Client struct {
	baseURL string
	sender  Sender
}

func NewClient(baseURL string, sender Sender) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: baseURL, sender: sender}
}

func (c *Client) StartGame(ctx context.Context) (session.Start, error) {
	res, err := c.sender.Send(ctx, c.endpoint("game", "start"), consts.MethodPost)
	if err != nil {
		return session.Start{}, err
	}
	if err := requireFields(res, "gameId", "lives", "gold", "level"); err != nil {
		return session.Start{}, fmt.Errorf("start game: %w", err)
	}
	return decodeStart(res), nil
}

func (c *Client) Quests(ctx context.Context, gameID string) ([]quest.Quest, error) {
	res, err := c.sender.Send(ctx, c.endpoint(gameID, "messages"), consts.MethodGet)
	if err != nil {
		return nil, err
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: messages is not an array", ErrMalformedJSON)
	}
	return decodeQuests(res), nil
}

func (c *Client) Solve(ctx context.Context, gameID, questID string) (session.QuestOutcome, error) {
	res, err := c.sender.Send(ctx, c.endpoint(gameID, "solve", questID), consts.MethodPost)
	if err != nil {
		return session.QuestOutcome{}, err
	}
	if err := requireFields(res, "lives", "gold", "turn", "score"); err != nil {
		return session.QuestOutcome{}, fmt.Errorf("solve: %w", err)
	}
	return decodeQuestOutcome(res), nil
}

func (c *Client) ShopItems(ctx context.Context, gameID string) ([]shop.Item, error) {
	res, err := c.sender.Send(ctx, c.endpoint(gameID, "shop"), consts.MethodGet)
	if err != nil {
		return nil, err
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: shop is not an array", ErrMalformedJSON)
	}
	return decodeItems(res), nil
}

func (c *Client) Buy(ctx context.Context, gameID, itemID string) (session.PurchaseOutcome, error) {
	res, err := c.sender.Send(ctx, c.endpoint(gameID, "shop", "buy", itemID), consts.MethodPost)
	if err != nil {
		return session.PurchaseOutcome{}, err
	}
	if err := requireFields(res, "gold", "lives", "level", "turn"); err != nil {
		return session.PurchaseOutcome{}, fmt.Errorf("buy: %w", err)
	}
	return decodePurchaseOutcome(res), nil
}

func (c *Client) InvestigateReputation(ctx context.Context, gameID string) (session.Reputation, error) {
	res, err := c.sender.Send(ctx, c.endpoint(gameID, "investigate", "reputation"), consts.MethodPost)
	if err != nil {
		return session.Reputation{}, err
	}
	if err := requireFields(res, "people", "state", "underworld"); err != nil {
		return session.Reputation{}, fmt.Errorf("investigate reputation: %w", err)
	}
	return session.Reputation{
		People:     res.Get("people").Float(),
		State:      res.Get("state").Float(),
		Underworld: res.Get("underworld").Float(),
	}, nil
}

func (c *Client) endpoint(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(apiPrefix)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func requireFields(res gjson.Result, fields ...string) error {
	if !res.IsObject() {
		return fmt.Errorf("%w: expected object", ErrMalformedJSON)
	}
	for _, f := range fields {
		if !res.Get(f).Exists() {
			return fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}
	return nil
}

var _ ports.GameAPI = (*Client)(nil)
