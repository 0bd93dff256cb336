// Package catalog holds the static tool catalog and the pure filters the
// tools pages run over it. The catalog is fixed at compile time; no store
// round trip is involved.
package catalog

import "strings"

// Category is the fixed set of tool categories.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryImage      Category = "image"
	CategoryText       Category = "text"
	CategoryConversion Category = "conversion"
	CategoryGenerator  Category = "generator"
	CategoryCalculator Category = "calculator"
	CategoryDeveloper  Category = "developer"
)

// Tool is one catalog entry.
type Tool struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Category    Category `json:"category"`
	Path        string   `json:"path"`
	IsPopular   bool     `json:"isPopular,omitempty"`
	IsNew       bool     `json:"isNew,omitempty"`
	IsUpcoming  bool     `json:"isUpcoming,omitempty"`
}

// Tools is the full catalog, in display order.
var Tools = []Tool{
	{ID: "remove-bg", Name: "Remove Background", Description: "Remove background from images with just one click", Icon: "image-off", Category: CategoryImage, Path: "/tools/remove-background", IsPopular: true},
	{ID: "qr-code", Name: "QR Code Generator", Description: "Generate customizable QR codes for any URL or text", Icon: "qr-code", Category: CategoryGenerator, Path: "/tools/qr-code-generator", IsPopular: true},
	{ID: "tiny-png", Name: "Image Compressor", Description: "Compress images without losing quality", Icon: "image-down", Category: CategoryImage, Path: "/tools/image-compressor", IsPopular: true},
	{ID: "convertio", Name: "File Converter", Description: "Convert files between different formats", Icon: "file-symlink", Category: CategoryConversion, Path: "/tools/file-converter", IsPopular: true},
	{ID: "pdf-tools", Name: "PDF Tools", Description: "Edit, merge, split and convert PDF files", Icon: "file-text", Category: CategoryConversion, Path: "/tools/pdf-tools", IsNew: true},
	{ID: "lorem-ipsum", Name: "Lorem Ipsum Generator", Description: "Generate placeholder text for your designs", Icon: "text", Category: CategoryGenerator, Path: "/tools/lorem-ipsum"},
	{ID: "json-formatter", Name: "JSON Formatter", Description: "Format and validate your JSON data", Icon: "braces", Category: CategoryDeveloper, Path: "/tools/json-formatter"},
	{ID: "diff-checker", Name: "Diff Checker", Description: "Compare and find differences between texts", Icon: "git-compare", Category: CategoryText, Path: "/tools/diff-checker"},
	{ID: "table-converter", Name: "Table Converter", Description: "Convert between different table formats", Icon: "table", Category: CategoryConversion, Path: "/tools/table-converter"},
	{ID: "compress-jpeg", Name: "JPEG Compressor", Description: "Compress JPEG images without losing quality", Icon: "image", Category: CategoryImage, Path: "/tools/compress-jpeg"},
	{ID: "image-resizer", Name: "Image Resizer", Description: "Resize images to any dimension", Icon: "scaling", Category: CategoryImage, Path: "/tools/image-resizer"},
	{ID: "url-encoder", Name: "URL Encoder/Decoder", Description: "Encode or decode URLs", Icon: "link", Category: CategoryDeveloper, Path: "/tools/url-encoder-decoder"},
	{ID: "markdown-converter", Name: "Markdown to HTML", Description: "Convert Markdown to HTML", Icon: "file-code", Category: CategoryConversion, Path: "/tools/markdown-to-html"},
	{ID: "csv-to-json", Name: "CSV to JSON", Description: "Convert CSV to JSON format", Icon: "file-json", Category: CategoryConversion, Path: "/tools/csv-to-json"},
	{ID: "base64", Name: "Base64 Encoder/Decoder", Description: "Encode or decode Base64 strings", Icon: "binary", Category: CategoryDeveloper, Path: "/tools/base64"},
	{ID: "word-counter", Name: "Word Counter", Description: "Count words, characters and sentences", Icon: "text-cursor", Category: CategoryText, Path: "/tools/word-counter"},
	{ID: "hex-rgb", Name: "HEX to RGB Converter", Description: "Convert HEX color codes to RGB and vice versa", Icon: "palette", Category: CategoryDeveloper, Path: "/tools/hex-rgb-converter"},
	{ID: "password-generator", Name: "Password Generator", Description: "Generate strong, secure passwords", Icon: "key", Category: CategoryGenerator, Path: "/tools/password-generator", IsNew: true},
	{ID: "ai-summarizer", Name: "AI Text Summarizer", Description: "Summarize long texts using AI", Icon: "sparkles", Category: CategoryText, Path: "/tools/ai-summarizer", IsUpcoming: true},
	{ID: "code-beautifier", Name: "Code Beautifier", Description: "Format and beautify your code", Icon: "code", Category: CategoryDeveloper, Path: "/tools/code-beautifier", IsUpcoming: true},
}

// Query is one filter request from a tools page.
type Query struct {
	Category        Category
	Search          string
	ExcludeUpcoming bool
}

// Filter applies category, search and upcoming predicates in one pass.
// "all" short-circuits the category check; the search matches name,
// description or category case-insensitively (any field is enough); input
// order is preserved.
func Filter(tools []Tool, q Query) []Tool {
	query := strings.ToLower(q.Search)

	out := make([]Tool, 0, len(tools))
	for _, tool := range tools {
		if q.Category != "" && q.Category != CategoryAll && tool.Category != q.Category {
			continue
		}
		if q.ExcludeUpcoming && tool.IsUpcoming {
			continue
		}
		if query != "" {
			if !strings.Contains(strings.ToLower(tool.Name), query) &&
				!strings.Contains(strings.ToLower(tool.Description), query) &&
				!strings.Contains(strings.ToLower(string(tool.Category)), query) {
				continue
			}
		}
		out = append(out, tool)
	}
	return out
}

// ByCategory returns the available (non-upcoming) tools of one category.
func ByCategory(category Category) []Tool {
	return Filter(Tools, Query{Category: category, ExcludeUpcoming: true})
}

// Popular returns the available tools flagged popular.
func Popular() []Tool {
	return pick(func(t Tool) bool { return t.IsPopular && !t.IsUpcoming })
}

// New returns the available tools flagged new.
func New() []Tool {
	return pick(func(t Tool) bool { return t.IsNew && !t.IsUpcoming })
}

// Upcoming returns the not-yet-available tools.
func Upcoming() []Tool {
	return pick(func(t Tool) bool { return t.IsUpcoming })
}

// ByID finds a tool by id.
func ByID(id string) (Tool, bool) {
	for _, t := range Tools {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// Resolve maps tool ids to tools, dropping unknown ids.
func Resolve(ids []string) []Tool {
	out := make([]Tool, 0, len(ids))
	for _, id := range ids {
		if t, ok := ByID(id); ok {
			out = append(out, t)
		}
	}
	return out
}

func pick(keep func(Tool) bool) []Tool {
	out := make([]Tool, 0, len(Tools))
	for _, t := range Tools {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
