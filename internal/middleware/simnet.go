package middleware

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/config"
)

// errorRate is the chance of failing a request outright when error
// simulation is on.
const errorRate = 0.12

// SimNetOptions lets tests replace the randomness and the clock.
type SimNetOptions struct {
	Rand  func() float64
	Sleep func(time.Duration)
}

// SimNet makes the demo feel like a remote API: when enabled it delays every
// successful response by a uniform random duration, and optionally fails a
// fraction of requests with a simulated 500 before the handler runs. Errors
// propagate without the delay.
func SimNet(cfg *config.Config, opts ...SimNetOptions) fiber.Handler {
	randFloat := rand.Float64
	sleep := time.Sleep
	if len(opts) > 0 {
		if opts[0].Rand != nil {
			randFloat = opts[0].Rand
		}
		if opts[0].Sleep != nil {
			sleep = opts[0].Sleep
		}
	}

	return func(c *fiber.Ctx) error {
		if cfg.SimulateErrors && randFloat() < errorRate {
			return apierr.Simulated()
		}

		if err := c.Next(); err != nil {
			return err
		}

		if cfg.LatencyMax > 0 {
			span := cfg.LatencyMax - cfg.LatencyMin
			delay := cfg.LatencyMin
			if span > 0 {
				delay += time.Duration(randFloat() * float64(span+1))
			}
			sleep(delay)
		}
		return nil
	}
}
