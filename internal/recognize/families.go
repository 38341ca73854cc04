package recognize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"distlab/domain/dist"
)

// Parameter extraction is best-effort text scraping over the normalized
// evaluable form. When a parameter cannot be scraped, the family's formulas
// keep the symbolic letter so the presentation layer still has something
// meaningful to typeset.

var (
	reExpNeg     = regexp.MustCompile(`exp\(-([0-9.]+)\)`)
	reExpNegRate = regexp.MustCompile(`exp\(-([0-9.]+)\*x\)`)
	rePowBase    = regexp.MustCompile(`([0-9.]+)\^x`)
	reComplement = regexp.MustCompile(`\(1-([0-9.]+)\)`)
	reXPow       = regexp.MustCompile(`x\^\(?([0-9.]+)`)
	reOneMinusX  = regexp.MustCompile(`\(1-x\)\^\(?([0-9.]+)`)
	reShift      = regexp.MustCompile(`\(x-([0-9.]+)\)\^2`)
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// scrape returns the first capture of re in src, as a float.
func scrape(re *regexp.Regexp, src string) (float64, bool) {
	m := re.FindStringSubmatch(src)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	return v, err == nil
}

func poissonMatch(src string) *dist.Match {
	lam := `\lambda`
	if v, ok := scrape(reExpNeg, src); ok {
		lam = num(v)
	}
	return &dist.Match{
		Name:     "Poisson Distribution",
		Notation: fmt.Sprintf("X ~ Poisson(%s)", lam),
		Family:   "poisson",
		PDF:      fmt.Sprintf(`\frac{%s^x e^{-%s}}{x!}`, lam, lam),
		MGF:      fmt.Sprintf(`e^{%s(e^t - 1)}`, lam),
		PGF:      fmt.Sprintf(`e^{%s(t - 1)}`, lam),
	}
}

func binomialMatch(src string, r dist.Range) *dist.Match {
	n := num(r.Values[len(r.Values)-1])
	p := "p"
	if v, ok := scrape(rePowBase, src); ok {
		p = num(v)
	} else if v, ok := scrape(reComplement, src); ok {
		p = num(v)
	}
	q := "1-p"
	if p != "p" {
		if pv, err := strconv.ParseFloat(p, 64); err == nil {
			q = num(1 - pv)
		}
	}
	return &dist.Match{
		Name:     "Binomial Distribution",
		Notation: fmt.Sprintf("X ~ B(%s, %s)", n, p),
		Family:   "binomial",
		PDF:      fmt.Sprintf(`\binom{%s}{x} %s^x (%s)^{%s-x}`, n, p, q, n),
		MGF:      fmt.Sprintf(`(%s + %s e^t)^{%s}`, q, p, n),
		PGF:      fmt.Sprintf(`(%s + %s t)^{%s}`, q, p, n),
	}
}

func geometricMatch(src string) *dist.Match {
	p := "p"
	if v, ok := scrape(reComplement, src); ok {
		p = num(1 - v)
	} else if strings.Contains(src, "*") {
		// Leading coefficient form "p*(1-p)^(x-1)".
		if v, err := strconv.ParseFloat(src[:strings.Index(src, "*")], 64); err == nil {
			p = num(v)
		}
	}
	q := "1-p"
	if p != "p" {
		if pv, err := strconv.ParseFloat(p, 64); err == nil {
			q = num(1 - pv)
		}
	}
	return &dist.Match{
		Name:     "Geometric Distribution",
		Notation: fmt.Sprintf("X ~ Geometric(%s)", p),
		Family:   "geometric",
		PDF:      fmt.Sprintf(`(%s)^{x-1} %s`, q, p),
		MGF:      fmt.Sprintf(`\frac{%s e^t}{1 - (%s)e^t}`, p, q),
		PGF:      fmt.Sprintf(`\frac{%s t}{1 - (%s)t}`, p, q),
	}
}

func betaMatch(src string) *dist.Match {
	alpha, beta := `\alpha`, `\beta`
	if v, ok := scrape(reXPow, src); ok {
		alpha = num(v + 1)
	}
	if v, ok := scrape(reOneMinusX, src); ok {
		beta = num(v + 1)
	}
	return &dist.Match{
		Name:     "Beta Distribution",
		Notation: fmt.Sprintf("X ~ Beta(%s, %s)", alpha, beta),
		Family:   "beta",
		PDF:      fmt.Sprintf(`\frac{x^{%s-1}(1-x)^{%s-1}}{B(%s, %s)}`, alpha, beta, alpha, beta),
		// No elementary closed form; the confluent hypergeometric function
		// is the standard notation.
		MGF: fmt.Sprintf(`{}_1F_1(%s;\, %s+%s;\, t)`, alpha, alpha, beta),
	}
}

func exponentialMatch(src string) *dist.Match {
	lam := `\lambda`
	// The rate is the leading coefficient ahead of the exponential marker.
	if i := strings.Index(src, "*exp"); i > 0 {
		if v, err := strconv.ParseFloat(src[:i], 64); err == nil {
			lam = num(v)
		}
	}
	if lam == `\lambda` {
		if v, ok := scrape(reExpNegRate, src); ok {
			lam = num(v)
		}
	}
	return &dist.Match{
		Name:     "Exponential Distribution",
		Notation: fmt.Sprintf("X ~ Exp(%s)", lam),
		Family:   "exponential",
		PDF:      fmt.Sprintf(`%s e^{-%s x}`, lam, lam),
		MGF:      fmt.Sprintf(`\frac{%s}{%s - t}`, lam, lam),
	}
}

func gammaMatch(src string) *dist.Match {
	alpha, lam := `\alpha`, `\lambda`
	if v, ok := scrape(reXPow, src); ok {
		alpha = num(v + 1)
	} else if strings.Contains(src, "x*exp") {
		// x*e^{-lambda x} is the alpha=2 shape.
		alpha = "2"
	}
	if v, ok := scrape(reExpNegRate, src); ok {
		lam = num(v)
	} else if strings.Contains(src, "exp(-x)") {
		lam = "1"
	}
	return &dist.Match{
		Name:     "Gamma Distribution",
		Notation: fmt.Sprintf("X ~ Gamma(%s, %s)", alpha, lam),
		Family:   "gamma",
		PDF:      fmt.Sprintf(`\frac{%s^{%s}}{\Gamma(%s)} x^{%s-1} e^{-%s x}`, lam, alpha, alpha, alpha, lam),
		MGF:      fmt.Sprintf(`\left(\frac{%s}{%s - t}\right)^{%s}`, lam, lam, alpha),
	}
}

func normalMatch(src string) *dist.Match {
	mu, sigma := `\mu`, `\sigma`
	if v, ok := scrape(reShift, src); ok {
		mu = num(v)
	} else if strings.Contains(src, "x^2") && !strings.Contains(src, "(x-") {
		mu = "0"
	}
	return &dist.Match{
		Name:     "Normal Distribution",
		Notation: fmt.Sprintf("X ~ N(%s, %s^2)", mu, sigma),
		Family:   "normal",
		PDF:      fmt.Sprintf(`\frac{1}{%s\sqrt{2\pi}} e^{-\frac{(x-%s)^2}{2%s^2}}`, sigma, mu, sigma),
		MGF:      fmt.Sprintf(`e^{%s t + \frac{1}{2}%s^2 t^2}`, mu, sigma),
	}
}

func uniformMatch(r dist.Range) *dist.Match {
	a, b := num(r.Min), num(r.Max)
	return &dist.Match{
		Name:     "Uniform Distribution",
		Notation: fmt.Sprintf("X ~ U(%s, %s)", a, b),
		Family:   "uniform",
		PDF:      fmt.Sprintf(`\frac{1}{%s - %s}`, b, a),
		MGF:      fmt.Sprintf(`\frac{e^{%st} - e^{%st}}{t(%s - %s)}`, b, a, b, a),
	}
}
