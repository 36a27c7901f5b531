// Package systems ships the stock unit systems as embedded YAML definition
// documents (see unitsys.Document):
//
//	standard — SI base and derived units, SI and binary prefixes, imperial and
//	           US customary length/mass/volume, time, information, currency.
//	si       — SI units, prefixes and units accepted for use with SI.
//	ucum     — gram, meter, second and SI/binary prefixes for the UCUM grammar.
//
// Conversion factors that are exact by definition (1 in = 0.0254 m,
// 1 lb = 0.45359237 kg) are stored as exact rationals, so conversions
// between those units never pick up floating-point error.
package systems
