package browser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-rod/rod/lib/proto"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Cookie struct represents a browser cookie from JSON file (browser extension export format)
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite"`
}

func LoadCookies(path string) ([]Cookie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cookies []Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, fmt.Errorf("failed to parse cookies %s: %w", path, err)
	}
	return cookies, nil
}

// LoadSourceCookies loads <dir>/cookies-<source>.json. A missing file is not an error.
func LoadSourceCookies(dir, source string, log logrus.FieldLogger) []Cookie {
	path := filepath.Join(dir, fmt.Sprintf("cookies-%s.json", source))
	cookies, err := LoadCookies(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warnf("⚠️ Could not load %s cookies. Continuing.", source)
		}
		return nil
	}
	log.Infof("🍪 Loaded %s cookies (%d)", source, len(cookies))
	return cookies
}

func ToPlaywright(cookies []Cookie) []playwright.OptionalCookie {
	out := make([]playwright.OptionalCookie, len(cookies))
	for i, c := range cookies {
		out[i] = c.ToPlaywright()
	}
	return out
}

func (c Cookie) ToPlaywright() playwright.OptionalCookie {
	pwCookie := playwright.OptionalCookie{
		Name:   c.Name,
		Value:  c.Value,
		Domain: playwright.String(c.Domain),
		Path:   playwright.String(c.Path),
	}

	if c.Expires > 0 {
		pwCookie.Expires = playwright.Float(c.Expires)
	}
	if c.HTTPOnly {
		pwCookie.HttpOnly = playwright.Bool(true)
	}
	if c.Secure {
		pwCookie.Secure = playwright.Bool(true)
	}

	switch c.SameSite {
	case "Lax":
		pwCookie.SameSite = playwright.SameSiteAttributeLax
	case "Strict":
		pwCookie.SameSite = playwright.SameSiteAttributeStrict
	case "None":
		pwCookie.SameSite = playwright.SameSiteAttributeNone
	}

	return pwCookie
}

func ToRod(cookies []Cookie) []*proto.NetworkCookieParam {
	out := make([]*proto.NetworkCookieParam, len(cookies))
	for i, c := range cookies {
		param := &proto.NetworkCookieParam{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Secure:   c.Secure,
			HTTPOnly: c.HTTPOnly,
		}
		if c.Expires > 0 {
			param.Expires = proto.TimeSinceEpoch(c.Expires)
		}
		switch c.SameSite {
		case "Lax":
			param.SameSite = proto.NetworkCookieSameSiteLax
		case "Strict":
			param.SameSite = proto.NetworkCookieSameSiteStrict
		case "None":
			param.SameSite = proto.NetworkCookieSameSiteNone
		}
		out[i] = param
	}
	return out
}
