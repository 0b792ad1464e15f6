package dashboard

import (
	"fmt"
	"html"
	"strings"

	"github.com/example/redactview/internal/constants"
)

const pageStyles = `body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 32px; color: #1f2933; background-color: #ffffff; }
h1 { margin-bottom: 0.25rem; }
.section { margin-top: 2rem; }
.status { color: #52606d; min-height: 1.25rem; margin: 0.5rem 0; }
.pill { display: inline-block; padding: 0.25rem 0.5rem; margin-right: 0.5rem; border-radius: 9999px; background-color: #e4e7eb; font-weight: 600; }
.gallery { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; }
.card { margin: 0; border: 1px solid #d2d6dc; border-radius: 4px; padding: 0.5rem; }
.card img { width: 100%; height: auto; }
.card figcaption { margin-top: 0.5rem; font-size: 0.875rem; color: #52606d; }
.placeholder { color: #52606d; }
table { border-collapse: collapse; width: 100%; margin-top: 0.75rem; }
th, td { border: 1px solid #d2d6dc; padding: 0.5rem; text-align: left; vertical-align: top; }
`

// Page assembles the full dashboard document around the current region
// contents. The markup around the regions is static; everything dynamic lives
// inside the three regions and the status line, which the loader and uploader
// overwrite whole.
func Page(regions *Regions, version string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <title>Redaction Review</title>\n")
	fmt.Fprintf(&b, "  <style>%s</style>\n", pageStyles)
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString("  <h1>Redaction Review</h1>\n")
	fmt.Fprintf(&b, "  <p class=\"status\">redactview %s</p>\n", html.EscapeString(version))

	b.WriteString("  <section class=\"section\">\n")
	fmt.Fprintf(&b, "    <form method=\"post\" action=\"%s\" enctype=\"multipart/form-data\">\n", constants.UploadPath)
	fmt.Fprintf(&b, "      <input type=\"file\" name=\"%s\" accept=\"%s\">\n",
		constants.UploadFieldName, strings.Join(constants.SupportedUploadExts, ","))
	b.WriteString("      <button type=\"submit\">Upload</button>\n")
	b.WriteString("    </form>\n")
	fmt.Fprintf(&b, "    <form method=\"post\" action=\"%s\">\n", constants.RefreshPath)
	b.WriteString("      <button type=\"submit\">Refresh report</button>\n")
	b.WriteString("    </form>\n")
	fmt.Fprintf(&b, "    <p class=\"status\" id=\"upload-status\">%s</p>\n", html.EscapeString(regions.Status.Text()))
	b.WriteString("  </section>\n")

	b.WriteString("  <section class=\"section\">\n")
	b.WriteString("    <h2>Findings by Type</h2>\n")
	fmt.Fprintf(&b, "    <div id=\"summary\">%s</div>\n", regions.Summary.HTML())
	b.WriteString("  </section>\n")

	b.WriteString("  <section class=\"section\">\n")
	b.WriteString("    <h2>Redacted Pages</h2>\n")
	fmt.Fprintf(&b, "    <div id=\"gallery\" class=\"gallery\">%s</div>\n", regions.Gallery.HTML())
	b.WriteString("  </section>\n")

	b.WriteString("  <section class=\"section\">\n")
	b.WriteString("    <h2>Detections</h2>\n")
	b.WriteString("    <table>\n")
	b.WriteString("      <thead>\n")
	b.WriteString("        <tr><th>File</th><th>Page</th><th>Language</th><th>Type</th><th>Text Sample</th><th>Confidence</th></tr>\n")
	b.WriteString("      </thead>\n")
	fmt.Fprintf(&b, "      <tbody id=\"detections\">%s</tbody>\n", regions.Detections.HTML())
	b.WriteString("    </table>\n")
	b.WriteString("  </section>\n")

	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}
