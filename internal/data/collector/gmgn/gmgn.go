package gmgn

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/net/html"

	"github.com/songzhibin97/solscout/internal/models"
	"github.com/songzhibin97/solscout/internal/utils/request"
)

const DefaultURL = "https://gmgn.com/trending-tokens"

// GMGNDataSource scrapes the GMGN trending page
type GMGNDataSource struct {
	url        string
	httpClient *resty.Client
}

func NewGMGNDataSource(url string) *GMGNDataSource {
	if url == "" {
		url = DefaultURL
	}
	return &GMGNDataSource{
		url:        url,
		httpClient: request.Request,
	}
}

func (g *GMGNDataSource) Name() string {
	return "gmgn"
}

func (g *GMGNDataSource) FetchTrending(ctx context.Context) ([]models.Token, error) {
	resp, err := g.httpClient.R().
		SetContext(ctx).
		SetHeader("User-Agent", request.UserAgent).
		Get(g.url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	doc, err := html.Parse(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	return parseTokenRows(doc)
}

// 页面结构: div.token-row > span.token-{name,volume,liquidity,age,holders,ca}
func parseTokenRows(doc *html.Node) ([]models.Token, error) {
	tokens := make([]models.Token, 0)

	for i, row := range selectAll(doc, "div", "token-row") {
		token, err := parseTokenRow(row)
		if err != nil {
			return nil, fmt.Errorf("token row %d: %w", i, err)
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

func parseTokenRow(row *html.Node) (models.Token, error) {
	var fields [6]string
	for i, class := range []string{"token-name", "token-volume", "token-liquidity", "token-age", "token-holders", "token-ca"} {
		span := selectOne(row, "span", class)
		if span == nil {
			return models.Token{}, fmt.Errorf("missing span.%s", class)
		}
		fields[i] = strings.TrimSpace(textContent(span))
	}

	volume, err := parseAmount(fields[1])
	if err != nil {
		return models.Token{}, fmt.Errorf("failed to parse volume: %w", err)
	}

	liquidity, err := parseAmount(fields[2])
	if err != nil {
		return models.Token{}, fmt.Errorf("failed to parse liquidity: %w", err)
	}

	age, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(fields[3], " hours", "")))
	if err != nil {
		return models.Token{}, fmt.Errorf("failed to parse age: %w", err)
	}

	holders, err := strconv.Atoi(strings.ReplaceAll(fields[4], ",", ""))
	if err != nil {
		return models.Token{}, fmt.Errorf("failed to parse holders: %w", err)
	}

	ca := fields[5]

	return models.Token{
		Name:      fields[0],
		Volume:    volume,
		Liquidity: &liquidity,
		AgeHours:  &age,
		Holders:   &holders,
		CA:        &ca,
	}, nil
}

// parseAmount handles thousands separators, e.g. "12,345.67".
func parseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func matches(n *html.Node, tag, class string) bool {
	return n.Type == html.ElementNode && n.Data == tag && hasClass(n, class)
}

// selectAll returns every descendant of root matching tag.class in document order.
func selectAll(root *html.Node, tag, class string) []*html.Node {
	var found []*html.Node
	var walker func(*html.Node)
	walker = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if matches(child, tag, class) {
				found = append(found, child)
			}
			walker(child)
		}
	}
	walker(root)
	return found
}

func selectOne(root *html.Node, tag, class string) *html.Node {
	var found *html.Node
	var walker func(*html.Node)
	walker = func(n *html.Node) {
		for child := n.FirstChild; child != nil && found == nil; child = child.NextSibling {
			if matches(child, tag, class) {
				found = child
				return
			}
			walker(child)
		}
	}
	walker(root)
	return found
}

func textContent(n *html.Node) string {
	var builder strings.Builder
	var walker func(*html.Node)
	walker = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walker(child)
		}
	}
	walker(n)
	return builder.String()
}
