// Command headwall-audit fetches a URL and reports which of the security
// headers a built policy would emit are actually present on the response.
//
// Usage:
//
//	headwall-audit -url https://example.com [-timeout 10s] [-insecure]
//
// Exit code is 0 when every expected header is present and 1 otherwise, so the
// command can gate CI checks.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/imroc/req/v3"
	"github.com/olekukonko/tablewriter"

	"github.com/ossguard/headwall"
)

func main() {
	var (
		target   = flag.String("url", "", "URL to audit")
		timeout  = flag.Duration("timeout", 10*time.Second, "request timeout")
		insecure = flag.Bool("insecure", false, "skip TLS certificate verification")
	)
	flag.Parse()

	if *target == "" {
		fmt.Fprintln(os.Stderr, "usage: headwall-audit -url <url>")
		os.Exit(2)
	}

	policy, err := headwall.New().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build reference policy: %v\n", err)
		os.Exit(1)
	}

	client := req.C().SetTimeout(*timeout)
	if *insecure {
		client.EnableInsecureSkipVerify()
	}

	resp, err := client.R().Get(*target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch %s: %v\n", *target, err)
		os.Exit(1)
	}

	missing := writeReport(os.Stdout, *target, policy, resp.Header)
	if missing > 0 {
		os.Exit(1)
	}
}

// auditedHeaders is the reference set checked against the remote response,
// rendered from a default policy applied to an empty response.
func auditedHeaders(policy *headwall.Policy) ([]string, map[string]string) {
	expected := headerMap{}
	policy.Apply(expected)

	names := []string{
		headwall.HeaderStrictTransportSecurity,
		headwall.HeaderContentSecurityPolicy,
		headwall.HeaderXFrameOptions,
		headwall.HeaderXContentTypeOptions,
		headwall.HeaderXXSSProtection,
		headwall.HeaderReferrerPolicy,
		headwall.HeaderPermissionsPolicy,
		headwall.HeaderCrossOriginEmbedder,
		headwall.HeaderCrossOriginOpener,
		headwall.HeaderCrossOriginResource,
		headwall.HeaderCacheControl,
	}
	return names, expected
}

func writeReport(out io.Writer, target string, policy *headwall.Policy, remote http.Header) int {
	names, expected := auditedHeaders(policy)

	fmt.Fprintf(out, "\nsecurity header audit: %s\n\n", target)

	table := tablewriter.NewWriter(out)
	table.Header("Header", "Status", "Observed Value")

	audited, missing := 0, 0
	for _, name := range names {
		if _, ok := expected[name]; !ok {
			continue
		}
		audited++
		got := remote.Get(name)
		status := color.GreenString("present")
		if got == "" {
			status = color.RedString("missing")
			missing++
		}
		table.Append([]string{name, status, truncate(got, 72)})
	}
	table.Render()

	if missing > 0 {
		fmt.Fprintf(out, "\n%d of %d expected headers missing\n", missing, audited)
	}
	return missing
}

// headerMap is a throwaway ResponseHeaders used to render the reference set.
type headerMap map[string]string

func (m headerMap) Get(name string) string { return m[name] }
func (m headerMap) Set(name, value string) { m[name] = value }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
