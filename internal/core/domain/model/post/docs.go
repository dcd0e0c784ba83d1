// Package post contains the Post aggregate and its lifecycle state machine.
//
// A post is a donation offer: a description of surplus food, where it is, and
// who offered it. Its lifecycle runs from creation through NGO routing and
// acceptance to delivery, tracked as a single state tag so that combinations
// like "accepted with no NGO" cannot exist.
package post
