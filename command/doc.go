// Package command turns a solved route into the game's command tokens.
//
// A route is a list of waypoints after the start tile. A step to a
// neighbouring tile becomes its direction token ("up", "right", "down",
// "left"). A waypoint that repeats the previous one stands for an in-place
// action: each smash consumes the next entry of the rotation list and takes
// one repeat when the bot already faces that way ("smash") or two when it
// has to turn first ("<direction> smash").
package command
