package importer

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pbaille/portfolio/internal/domain"
	"github.com/pbaille/portfolio/internal/portfolio"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ScriptID is the id of the script element carrying an exported document
const ScriptID = "portfolio-data"

const maxBody = 5 * 1024 * 1024

// Fetch loads a portfolio document from a file path or an http(s) URL. The
// source may be the JSON document itself or an exported HTML page.
func Fetch(ctx context.Context, source string) (domain.Document, error) {
	var (
		body []byte
		err  error
	)
	if IsURL(source) {
		body, err = fetchURL(ctx, source)
	} else {
		body, err = fetchFile(source)
	}
	if err != nil {
		return domain.Document{}, err
	}
	return Parse(body)
}

// Parse decodes a JSON document or extracts one from an HTML page
func Parse(body []byte) (domain.Document, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '<' {
		payload, err := extractScript(trimmed)
		if err != nil {
			return domain.Document{}, err
		}
		trimmed = payload
	}
	return portfolio.Decode(trimmed)
}

// IsURL checks if a string looks like a URL
func IsURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "www.")
}

func fetchFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open source")
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, maxBody))
	if err != nil {
		return nil, errors.Wrap(err, "read source")
	}
	return body, nil
}

func fetchURL(ctx context.Context, rawURL string) ([]byte, error) {
	// Validate URL
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, errors.Wrap(err, "invalid URL")
	}
	if u.Scheme == "" {
		u, err = url.Parse("https://" + strings.TrimSpace(rawURL))
		if err != nil {
			return nil, errors.Wrap(err, "invalid URL")
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("unsupported scheme: %s", u.Scheme)
	}

	// Fetch with timeout
	client := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", "portfolio/1.0")
	req.Header.Set("Accept", "application/json, text/html")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	return body, nil
}

// extractScript returns the text of <script type="application/json" id="portfolio-data">
func extractScript(page []byte) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "script" &&
			attr(n, "id") == ScriptID && attr(n, "type") == "application/json" {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if found == nil {
		return nil, errors.Errorf("no %s script in page", ScriptID)
	}

	var sb strings.Builder
	for c := found.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return []byte(sb.String()), nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Info.Name}}</title>
<script type="application/json" id="` + ScriptID + `">{{.JSON}}</script>
</head>
<body>
<h1>{{.Info.Name}}</h1>
<p>{{.Info.Title}}</p>
<ul>
{{range .Projects}}<li>{{.Title}}</li>
{{end}}</ul>
</body>
</html>
`))

// Export renders doc as a static HTML page that Parse can read back
func Export(w io.Writer, doc domain.Document) error {
	data, err := portfolio.Encode(doc)
	if err != nil {
		return err
	}

	err = pageTmpl.Execute(w, struct {
		Info     domain.PersonalInfo
		Projects []domain.Project
		JSON     template.JS
	}{doc.PersonalInfo, doc.Projects, template.JS(escapeScript(data))})
	if err != nil {
		return errors.Wrap(err, "render page")
	}
	return nil
}

// escapeScript keeps the payload from closing its script element early
func escapeScript(data []byte) string {
	return strings.NewReplacer("</", `<\/`).Replace(string(data))
}
