// Package render draws a level board as boxed ASCII art.
//
// Each cell shows one letter: B the bot's start, D a destroyable brick,
// X a permanent brick, S a star, H a hammer and R a ruby. WithRoute marks
// the free tiles of a solved route with '*'. Rows are labelled on the left
// and columns below the board.
package render
