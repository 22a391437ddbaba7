// Serialize job listings into an RSS 2.0 document

package feed

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"go-ifad-jobs/internal/config"
	"go-ifad-jobs/internal/scraper"
)

const atomNamespace = "http://www.w3.org/2005/Atom"

//RSS wants RFC 822-style dates; readers expect the numeric zone
const buildDateLayout = "Mon, 02 Jan 2006 15:04:05 +0000"

type rssDocument struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	AtomNS  string   `xml:"xmlns:atom,attr"`
	Channel rssChannel
}

type rssChannel struct {
	XMLName       xml.Name  `xml:"channel"`
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	SelfLink      atomLink  `xml:"atom:link"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	GUID        rssGUID `xml:"guid"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type Builder struct {
	cfg *config.Config
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{
		cfg: cfg,
	}
}

//Build renders the feed document. An empty listing slice still yields a
//valid channel with zero items.
func (b *Builder) Build(jobs []scraper.JobListing) ([]byte, error) {
	doc := rssDocument{
		Version: "2.0",
		AtomNS:  atomNamespace,
		Channel: rssChannel{
			Title:       b.cfg.ChannelTitle,
			Link:        b.cfg.PortalURL,
			Description: b.cfg.ChannelDescription,
			Language:    b.cfg.Language,
			SelfLink: atomLink{
				Href: b.cfg.FeedURL,
				Rel:  "self",
				Type: "application/rss+xml",
			},
			LastBuildDate: time.Now().UTC().Format(buildDateLayout),
			Items:         make([]rssItem, 0, len(jobs)),
		},
	}

	for _, job := range jobs {
		doc.Channel.Items = append(doc.Channel.Items, rssItem{
			Title:       job.Title,
			Link:        job.Link,
			Description: job.Description(),
			GUID: rssGUID{
				IsPermaLink: true,
				Value:       job.Link,
			},
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

//WriteFile serializes the feed and writes it to path
func (b *Builder) WriteFile(jobs []scraper.JobListing, path string) error {
	data, err := b.Build(jobs)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write feed file: %w", err)
	}

	return nil
}
