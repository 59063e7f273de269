// Package formats provides parsers for map source files.
//
// ASCII maps are rectangular grids of single-character cells: '#' and the
// digits 1-9 are walls (the digit selects a wall type), '.' is open
// floor, and one of '^', '>', 'v', '<' marks the spawn cell and the
// direction the player faces there.
package formats
