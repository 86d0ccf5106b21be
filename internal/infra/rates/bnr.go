package rates

import (
	"context"
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/money"
	"storefront/internal/infra/breaker"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

var (
	ErrFeedUnavailable = errs.New("exchange rate feed unavailable")
	ErrFeedMalformed   = errs.New("exchange rate feed malformed")
)

// bnrDataSet mirrors the National Bank of Romania daily reference feed.
// Each rate is RON per <multiplier> units of the currency.
type bnrDataSet struct {
	XMLName xml.Name `xml:"DataSet"`
	Body    struct {
		OrigCurrency string `xml:"OrigCurrency"`
		Cubes        []struct {
			Date  string `xml:"date,attr"`
			Rates []struct {
				Currency   string `xml:"currency,attr"`
				Multiplier string `xml:"multiplier,attr"`
				Value      string `xml:",chardata"`
			} `xml:"Rate"`
		} `xml:"Cube"`
	} `xml:"Body"`
}

type BNRFetcher struct {
	client     *resty.Client
	url        string
	feePercent decimal.Decimal
	clock      clock.Clock
	cb         *gobreaker.CircuitBreaker[*money.Rates]
}

type BNRFetcherConfig struct {
	URL                string
	FeePercent         decimal.Decimal
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

func NewBNRFetcher(cfg BNRFetcherConfig, clk clock.Clock) *BNRFetcher {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Accept", "application/xml")

	return &BNRFetcher{
		client:     client,
		url:        cfg.URL,
		feePercent: cfg.FeePercent,
		clock:      clk,
		cb:         breaker.New[*money.Rates]("bnr-rates", cfg.BreakerMaxFailures, cfg.BreakerOpenTimeout),
	}
}

func (f *BNRFetcher) FetchRates(ctx context.Context) (*money.Rates, error) {
	rates, err := f.cb.Execute(func() (*money.Rates, error) {
		return f.fetch(ctx)
	})
	if err != nil {
		if breaker.IsOpen(err) {
			return nil, errs.Mark(err, ErrFeedUnavailable)
		}
		return nil, err
	}
	return rates, nil
}

func (f *BNRFetcher) fetch(ctx context.Context) (*money.Rates, error) {
	resp, err := f.client.R().SetContext(ctx).Get(f.url)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to call rate feed"), ErrFeedUnavailable)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errs.Mark(errs.Newf("rate feed answered %d", resp.StatusCode()), ErrFeedUnavailable)
	}
	return ParseBNR(resp.Body(), f.feePercent, f.clock.Now())
}

// ParseBNR extracts EUR and GBP from the latest cube of the feed.
func ParseBNR(body []byte, feePercent decimal.Decimal, fetchedAt time.Time) (*money.Rates, error) {
	var ds bnrDataSet
	if err := xml.Unmarshal(body, &ds); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode rate feed"), ErrFeedMalformed)
	}
	if orig := strings.TrimSpace(ds.Body.OrigCurrency); orig != "" && orig != money.Base.String() {
		return nil, errs.Mark(errs.Newf("unexpected feed base %q", orig), ErrFeedMalformed)
	}
	if len(ds.Body.Cubes) == 0 {
		return nil, errs.Mark(errs.New("rate feed has no cube"), ErrFeedMalformed)
	}

	cube := ds.Body.Cubes[len(ds.Body.Cubes)-1]
	found := map[money.Currency]decimal.Decimal{}
	for _, r := range cube.Rates {
		cur := money.Currency(strings.ToUpper(r.Currency))
		if cur != money.EUR && cur != money.GBP {
			continue
		}
		value, err := decimal.NewFromString(strings.TrimSpace(r.Value))
		if err != nil || !value.IsPositive() {
			return nil, errs.Mark(errs.Newf("invalid %s rate %q", cur, r.Value), ErrFeedMalformed)
		}
		if m := strings.TrimSpace(r.Multiplier); m != "" {
			mult, merr := decimal.NewFromString(m)
			if merr != nil || !mult.IsPositive() {
				return nil, errs.Mark(errs.Newf("invalid %s multiplier %q", cur, m), ErrFeedMalformed)
			}
			value = value.Div(mult)
		}
		found[cur] = value
	}

	eur, okEUR := found[money.EUR]
	gbp, okGBP := found[money.GBP]
	if !okEUR || !okGBP {
		return nil, errs.Mark(errs.New("rate feed is missing EUR or GBP"), ErrFeedMalformed)
	}

	return &money.Rates{
		EUR:        eur,
		GBP:        gbp,
		FeePercent: feePercent,
		FetchedAt:  fetchedAt,
	}, nil
}
