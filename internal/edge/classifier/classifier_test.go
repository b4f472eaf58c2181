package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClassifier() *Classifier {
	return New([]string{"ecombuildr.com", "preview.ecombuildr.app"})
}

func TestIsSocialCrawler(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		expected  bool
	}{
		{"facebook", "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)", true},
		{"twitter", "Twitterbot/1.0", true},
		{"linkedin", "LinkedInBot/1.0 (compatible; Mozilla/5.0)", true},
		{"whatsapp", "WhatsApp/2.23.2.72 A", true},
		{"slack", "Slackbot-LinkExpanding 1.0", true},
		{"discord", "Mozilla/5.0 (compatible; DiscordBot/2.0)", true},
		{"telegram", "TelegramBot (like TwitterBot)", true},
		{"skype", "Mozilla/5.0 (Windows NT 6.1; WOW64) SkypeUriPreview Preview/0.5", true},
		{"facebook catalog", "facebookcatalog/1.0", true},
		{"googlebot", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", true},
		{"bingbot", "Mozilla/5.0 (compatible; bingbot/2.0)", true},
		{"chrome browser", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", false},
		{"firefox browser", "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0", false},
		{"curl", "curl/8.0.1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSocialCrawler(tt.userAgent))
		})
	}
}

func TestIsSystemDomain(t *testing.T) {
	c := newTestClassifier()

	assert.True(t, c.IsSystemDomain("ecombuildr.com"))
	assert.True(t, c.IsSystemDomain("app.ecombuildr.com"))
	assert.True(t, c.IsSystemDomain("ECOMBUILDR.COM"))
	assert.True(t, c.IsSystemDomain("shop.preview.ecombuildr.app"))
	assert.True(t, c.IsSystemDomain("ecombuildr.com:443"))

	assert.False(t, c.IsSystemDomain("shop.example.com"))
	assert.False(t, c.IsSystemDomain("example.com"))
}

func TestClassifyPath_SystemWebsitePage(t *testing.T) {
	c := newTestClassifier()

	t.Run("with page slug", func(t *testing.T) {
		addr := c.ClassifyPath("ecombuildr.com", "/site/acme-store/about")
		assert.Equal(t, KindSystemWebsitePage, addr.Kind)
		assert.Equal(t, "acme-store", addr.WebsiteSlug)
		assert.Equal(t, "about", addr.PageSlug)
	})

	t.Run("without page slug defaults to homepage", func(t *testing.T) {
		addr := c.ClassifyPath("ecombuildr.com", "/site/acme-store")
		assert.Equal(t, KindSystemWebsitePage, addr.Kind)
		assert.Equal(t, "acme-store", addr.WebsiteSlug)
		assert.Equal(t, HomepageSlug, addr.PageSlug)
	})
}

func TestClassifyPath_SystemFunnelStep(t *testing.T) {
	c := newTestClassifier()

	addr := c.ClassifyPath("ecombuildr.com", "/funnel/4f3a2b1c-0000-0000-0000-000000000000/opt-in")
	assert.Equal(t, KindSystemFunnelStep, addr.Kind)
	assert.Equal(t, "4f3a2b1c-0000-0000-0000-000000000000", addr.FunnelID)
	assert.Equal(t, "opt-in", addr.StepSlug)
}

func TestClassifyPath_Product(t *testing.T) {
	c := newTestClassifier()

	t.Run("system domain", func(t *testing.T) {
		addr := c.ClassifyPath("ecombuildr.com", "/products/blue-shoes")
		assert.Equal(t, KindProduct, addr.Kind)
		assert.Equal(t, "blue-shoes", addr.ProductSlug)
	})

	t.Run("custom domain", func(t *testing.T) {
		addr := c.ClassifyPath("shop.example.com", "/products/blue-shoes")
		assert.Equal(t, KindProduct, addr.Kind)
		assert.Equal(t, "blue-shoes", addr.ProductSlug)
	})
}

func TestClassifyPath_CustomDomain(t *testing.T) {
	c := newTestClassifier()

	t.Run("root path", func(t *testing.T) {
		addr := c.ClassifyPath("shop.example.com", "/")
		assert.Equal(t, KindCustomDomainContent, addr.Kind)
		assert.True(t, addr.IsRoot)
		assert.Empty(t, addr.Slug)
	})

	t.Run("empty path", func(t *testing.T) {
		addr := c.ClassifyPath("shop.example.com", "")
		assert.Equal(t, KindCustomDomainContent, addr.Kind)
		assert.True(t, addr.IsRoot)
	})

	t.Run("single segment", func(t *testing.T) {
		addr := c.ClassifyPath("shop.example.com", "/blue-shoes")
		assert.Equal(t, KindCustomDomainContent, addr.Kind)
		assert.False(t, addr.IsRoot)
		assert.Equal(t, "blue-shoes", addr.Slug)
	})

	t.Run("nested path uses last segment", func(t *testing.T) {
		addr := c.ClassifyPath("shop.example.com", "/pages/info/blue-shoes/")
		assert.Equal(t, KindCustomDomainContent, addr.Kind)
		assert.Equal(t, "blue-shoes", addr.Slug)
	})
}

func TestClassifyPath_Unknown(t *testing.T) {
	c := newTestClassifier()

	assert.Equal(t, KindUnknown, c.ClassifyPath("ecombuildr.com", "/").Kind)
	assert.Equal(t, KindUnknown, c.ClassifyPath("ecombuildr.com", "/dashboard/settings").Kind)
	assert.Equal(t, KindUnknown, c.ClassifyPath("ecombuildr.com", "/site").Kind)
	assert.Equal(t, KindUnknown, c.ClassifyPath("ecombuildr.com", "/funnel/only-id").Kind)
}
