// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package textkit implements searching, splitting, trimming, replacing and
// case conversion over sequences of fixed-width code units.
//
// Every algorithm is written once over the closed set of code units
// described by [Unit]: narrow bytes, wide runes, UTF-16 and UTF-32 code
// units. Functions accept plain slices. Unless their name ends in InPlace,
// they treat the input as a borrowed view and never modify it. Functions
// ending in InPlace take ownership of the buffer, may overwrite it, and may
// return a slice of the same backing array.
//
// Case-insensitive operations compare one code unit at a time using a
// [Folder]. There is no full case folding: characters whose case mapping
// changes the number of code units (e.g. 'ß' to "SS") are compared by their
// simple mapping only.
package textkit

// BUG(cvieth): The case-insensitive finder gates candidates on the upper and
// lower mapping of the needle's first unit only, so a haystack unit that
// merely folds to the same lower case (U+212A KELVIN SIGN against 'k') is not
// matched in the first position even though it is matched anywhere else.
