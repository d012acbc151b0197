// Package model defines the example domain entities shipped with EntityKit.
//
// The entities double as reference material for the hook surface: Person
// exercises insert hooks, property validation, and automatic timestamping;
// Reminder opts out of timestamping entirely.
package model
