// Package style provides the style cascade and the built-in themes.
//
// # Themes
//
// A [Theme] is a named bundle of default style layers per table scope.
// Three themes are built in and retrieved by name with [GetTheme]:
//
//   - striped - filled head/foot, alternating body row fills (the default)
//   - grid - ruled cells with visible grid lines
//   - plain - bold head/foot, no fills or rules
//
// Unknown theme names fall back to striped.
//
// # The Cascade
//
// [Cascade.CellStyle] merges style layers in a fixed precedence order:
//
//  1. the scaled [Default] style
//  2. theme table style
//  3. theme section style (head/body/foot)
//  4. user global styles
//  5. user section styles
//  6. alternate-row styles (body only, even 0-based row indices)
//  7. column styles (body only, by data key then by index)
//  8. the cell input's own style layer
//
// The merge is shallow: each property is replaced wholesale by the highest
// precedence layer that sets it. Precedence is part of the contract, not an
// implementation detail.
package style
