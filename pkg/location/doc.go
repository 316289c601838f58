// Package location stores named coordinates per member.
package location
