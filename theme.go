package rsmd

import "sort"

// Theme is a named stylesheet written to styles.css when the config
// does not point at a custom CSS file.
type Theme struct {
	Name string
	CSS  string
}

var builtinThemes = map[string]Theme{
	"default": {Name: "default", CSS: defaultCSS},
	"light":   {Name: "light", CSS: lightCSS},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns the named built-in theme.
func ThemeByName(name string) (Theme, bool) {
	t, ok := builtinThemes[name]
	return t, ok
}

// DefaultTheme returns the dark default theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

const defaultCSS = `body {
  background-color: #121212;
  color: #e0e0e0;
  font-family:
    -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Oxygen, Ubuntu,
    Cantarell, "Open Sans", "Helvetica Neue", sans-serif;
  line-height: 1.75;
  margin: 0;
  padding: 0;
}

/* Card-like container for the page content */
#content {
  background-color: #1e1e1e;
  max-width: 780px;
  margin: 1.5rem auto;
  padding: 2rem;
  border-radius: 12px;
  box-shadow: 0 0 0 1px #2c2c2c;
}

header {
  background-color: #1a1a1a;
  border-bottom: 1px solid #333;
  position: sticky;
  top: 0;
  z-index: 1000;
}

nav {
  padding: 1rem 2rem;
  display: flex;
  justify-content: flex-start;
}

nav ul {
  list-style: none;
  margin: 0;
  padding: 0;
  display: flex;
  gap: 1rem;
}

nav ul li {
  margin: 0;
}

nav ul li a {
  color: #ddd;
  text-decoration: none;
  padding: 0.5rem 1rem;
  border-radius: 6px;
  transition: background-color 0.2s ease, color 0.2s ease;
}

nav ul li a:hover {
  background-color: #2f2f2f;
  color: #fff;
}

nav ul li a.active {
  background-color: #4ea1f3;
  color: #121212;
}

h1,
h2,
h3,
h4,
h5,
h6 {
  color: #ffffff;
  line-height: 1.3;
  margin-top: 2rem;
  margin-bottom: 1rem;
}

h1 {
  font-size: 2.25rem;
  border-bottom: 2px solid #2c2c2c;
  padding-bottom: 0.3rem;
}
h2 {
  font-size: 1.75rem;
  border-bottom: 1px solid #2c2c2c;
  padding-bottom: 0.2rem;
}
h3 {
  font-size: 1.5rem;
}
h4 {
  font-size: 1.25rem;
}
h5,
h6 {
  font-size: 1rem;
  font-weight: normal;
}

p {
  margin-bottom: 1.2rem;
}

a {
  color: #4ea1f3;
  text-decoration: none;
  transition: color 0.2s ease-in-out;
}
a:hover {
  color: #82cfff;
  text-decoration: underline;
}

img {
  max-width: 100%;
  height: auto;
  display: block;
  margin: 1.5rem auto;
  border-radius: 8px;
  box-shadow: 0 2px 8px rgba(0, 0, 0, 0.3);
}

/* Styles for when use_prism is false in the config */
pre.non_prism {
  background-color: #2a2a2a;
  padding: 1rem;
  border-radius: 8px;
  overflow-x: auto;
  font-size: 0.9rem;
  box-shadow: inset 0 0 0 1px #333;
}
pre.non_prism::before {
  counter-reset: listing;
}
code.non_prism {
  font-family: SFMono-Regular, Consolas, "Liberation Mono", Menlo, monospace;
  font-style: normal;
  background-color: #2a2a2a;
  padding: 0.2em 0.4em;
  border-radius: 4px;
  font-size: 0.95em;
  color: #dcdcdc;
}
pre.non_prism code.non_prism {
  counter-increment: listing;
  padding: 0 0.4em;
  text-align: left;
  float: left;
  clear: left;
}
pre.non_prism code.non_prism::before {
  content: counter(listing) ". ";
  display: inline-block;
  font-size: 0.85em;
  float: left;
  height: 1em;
  padding-top: 0.2em;
  padding-left: auto;
  margin-left: auto;
  text-align: right;
}

code {
  font-style: normal;
}

blockquote {
  border-left: 4px solid #555;
  padding: 0.1rem 1rem;
  color: #aaa;
  font-style: italic;
  margin: 1.5rem 0;
  background-color: #1a1a1a;
  border-radius: 2px;
}

ul,
ol {
  padding-left: 1.5rem;
  margin-bottom: 1.2rem;
}
li {
  margin-bottom: 0.5rem;
}

table {
  width: 100%;
  border-spacing: 0;
  margin: 2rem 0;
  background-color: #1e1e1e;
  border: 1px solid #333;
  border-radius: 8px;
  overflow: hidden;
  font-size: 0.95rem;
}

th,
td {
  padding: 0.75rem 1rem;
  text-align: left;
}

th {
  background-color: #2a2a2a;
  color: #ffffff;
  font-weight: 600;
}

tr:nth-child(even) td {
  background-color: #222;
}

tr:hover td {
  background-color: #2f2f2f;
}

td {
  color: #ddd;
  border-top: 1px solid #333;
}

hr {
  border: none;
  border-top: 1px solid #333;
  margin: 2rem 0;
}
`

const lightCSS = `body {
  background-color: #fafafa;
  color: #1f1f1f;
  font-family:
    -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Oxygen, Ubuntu,
    Cantarell, "Open Sans", "Helvetica Neue", sans-serif;
  line-height: 1.75;
  margin: 0;
  padding: 0;
}

#content {
  background-color: #ffffff;
  max-width: 780px;
  margin: 1.5rem auto;
  padding: 2rem;
  border-radius: 12px;
  box-shadow: 0 0 0 1px #e2e2e2;
}

header {
  background-color: #f2f2f2;
  border-bottom: 1px solid #ddd;
  position: sticky;
  top: 0;
  z-index: 1000;
}

nav {
  padding: 1rem 2rem;
  display: flex;
  justify-content: flex-start;
}

nav ul {
  list-style: none;
  margin: 0;
  padding: 0;
  display: flex;
  gap: 1rem;
}

nav ul li a {
  color: #333;
  text-decoration: none;
  padding: 0.5rem 1rem;
  border-radius: 6px;
  transition: background-color 0.2s ease, color 0.2s ease;
}

nav ul li a:hover {
  background-color: #e8e8e8;
  color: #000;
}

h1,
h2,
h3,
h4,
h5,
h6 {
  color: #111111;
  line-height: 1.3;
  margin-top: 2rem;
  margin-bottom: 1rem;
}

h1 {
  font-size: 2.25rem;
  border-bottom: 2px solid #e2e2e2;
  padding-bottom: 0.3rem;
}
h2 {
  font-size: 1.75rem;
  border-bottom: 1px solid #e2e2e2;
  padding-bottom: 0.2rem;
}
h3 {
  font-size: 1.5rem;
}
h4 {
  font-size: 1.25rem;
}
h5,
h6 {
  font-size: 1rem;
  font-weight: normal;
}

p {
  margin-bottom: 1.2rem;
}

a {
  color: #1a6fc4;
  text-decoration: none;
  transition: color 0.2s ease-in-out;
}
a:hover {
  color: #3b92e8;
  text-decoration: underline;
}

img {
  max-width: 100%;
  height: auto;
  display: block;
  margin: 1.5rem auto;
  border-radius: 8px;
  box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);
}

pre.non_prism {
  background-color: #f4f4f4;
  padding: 1rem;
  border-radius: 8px;
  overflow-x: auto;
  font-size: 0.9rem;
  box-shadow: inset 0 0 0 1px #e0e0e0;
}
code.non_prism {
  font-family: SFMono-Regular, Consolas, "Liberation Mono", Menlo, monospace;
  font-style: normal;
  background-color: #f4f4f4;
  padding: 0.2em 0.4em;
  border-radius: 4px;
  font-size: 0.95em;
  color: #333333;
}

code {
  font-style: normal;
}

blockquote {
  border-left: 4px solid #ccc;
  padding: 0.1rem 1rem;
  color: #555;
  font-style: italic;
  margin: 1.5rem 0;
  background-color: #f7f7f7;
  border-radius: 2px;
}

ul,
ol {
  padding-left: 1.5rem;
  margin-bottom: 1.2rem;
}
li {
  margin-bottom: 0.5rem;
}

table {
  width: 100%;
  border-spacing: 0;
  margin: 2rem 0;
  background-color: #ffffff;
  border: 1px solid #ddd;
  border-radius: 8px;
  overflow: hidden;
  font-size: 0.95rem;
}

th,
td {
  padding: 0.75rem 1rem;
  text-align: left;
}

th {
  background-color: #f0f0f0;
  color: #111111;
  font-weight: 600;
}

tr:nth-child(even) td {
  background-color: #fafafa;
}

td {
  color: #333;
  border-top: 1px solid #ddd;
}

hr {
  border: none;
  border-top: 1px solid #ddd;
  margin: 2rem 0;
}
`
