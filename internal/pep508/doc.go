// Package pep508 parses dependency specifiers ("requests[socks]>=2.0; os_name=='nt'")
// and renders them in canonical form: normalized project name and extras,
// normalized versions, no insignificant whitespace, single-quoted marker
// strings and parentheses only where a nested and/or group needs them.
package pep508
