package units

// defaultUnitTable is the built-in unit set. Base units per dimension:
// meter, gram, second, kelvin, milliliter. Scale factors for US customary
// units are the exact legal definitions (1 gallon = 3.785411784 l), which
// keeps kitchen conversions stable to the last printed decimal.
var defaultUnitTable = []Unit{
	// length (base: meter)
	{Name: "mm", Aliases: []string{"millimeter", "millimeters", "millimetre", "millimetres"}, Dim: Length, Scale: 0.001},
	{Name: "cm", Aliases: []string{"centimeter", "centimeters", "centimetre", "centimetres"}, Dim: Length, Scale: 0.01},
	{Name: "m", Aliases: []string{"meter", "meters", "metre", "metres"}, Dim: Length, Scale: 1},
	{Name: "km", Aliases: []string{"kilometer", "kilometers", "kilometre", "kilometres"}, Dim: Length, Scale: 1000},
	{Name: "in", Aliases: []string{"inch", "inches"}, Dim: Length, Scale: 0.0254},
	{Name: "ft", Aliases: []string{"foot", "feet"}, Dim: Length, Scale: 0.3048},
	{Name: "yd", Aliases: []string{"yard", "yards"}, Dim: Length, Scale: 0.9144},
	{Name: "mi", Aliases: []string{"mile", "miles"}, Dim: Length, Scale: 1609.344},

	// mass (base: gram)
	{Name: "mg", Aliases: []string{"milligram", "milligrams"}, Dim: Mass, Scale: 0.001},
	{Name: "g", Aliases: []string{"gram", "grams"}, Dim: Mass, Scale: 1},
	{Name: "kg", Aliases: []string{"kilogram", "kilograms"}, Dim: Mass, Scale: 1000},
	{Name: "t", Aliases: []string{"tonne", "tonnes", "ton", "tons"}, Dim: Mass, Scale: 1e6},
	{Name: "oz", Aliases: []string{"ounce", "ounces"}, Dim: Mass, Scale: 28.349523125},
	{Name: "lb", Aliases: []string{"lbs", "pound", "pounds"}, Dim: Mass, Scale: 453.59237},
	{Name: "st", Aliases: []string{"stone", "stones"}, Dim: Mass, Scale: 6350.29318},

	// time (base: second)
	{Name: "ms", Aliases: []string{"millisecond", "milliseconds"}, Dim: Time, Scale: 0.001},
	{Name: "s", Aliases: []string{"sec", "secs", "second", "seconds"}, Dim: Time, Scale: 1},
	{Name: "min", Aliases: []string{"mins", "minute", "minutes"}, Dim: Time, Scale: 60},
	{Name: "h", Aliases: []string{"hr", "hrs", "hour", "hours"}, Dim: Time, Scale: 3600},
	{Name: "day", Aliases: []string{"days"}, Dim: Time, Scale: 86400},
	{Name: "week", Aliases: []string{"weeks", "wk"}, Dim: Time, Scale: 604800},

	// volume (base: milliliter)
	{Name: "ml", Aliases: []string{"milliliter", "milliliters", "millilitre", "millilitres"}, Dim: Volume, Scale: 1},
	{Name: "cl", Aliases: []string{"centiliter", "centiliters", "centilitre", "centilitres"}, Dim: Volume, Scale: 10},
	{Name: "dl", Aliases: []string{"deciliter", "deciliters", "decilitre", "decilitres"}, Dim: Volume, Scale: 100},
	{Name: "l", Aliases: []string{"liter", "liters", "litre", "litres"}, Dim: Volume, Scale: 1000},
	{Name: "teaspoon", Aliases: []string{"teaspoons", "tsp"}, Dim: Volume, Scale: 4.92892159375},
	{Name: "tablespoon", Aliases: []string{"tablespoons", "tbsp"}, Dim: Volume, Scale: 14.78676478125},
	{Name: "floz", Aliases: []string{"fl oz", "fluid ounce", "fluid ounces"}, Dim: Volume, Scale: 29.5735295625},
	{Name: "cup", Aliases: []string{"cups"}, Dim: Volume, Scale: 236.5882365},
	{Name: "pint", Aliases: []string{"pints", "pt"}, Dim: Volume, Scale: 473.176473},
	{Name: "quart", Aliases: []string{"quarts", "qt"}, Dim: Volume, Scale: 946.352946},
	{Name: "gallon", Aliases: []string{"gallons", "gal"}, Dim: Volume, Scale: 3785.411784},

	// temperature (base: kelvin). Celsius and fahrenheit are affine:
	// K = C + 273.15, K = (F + 459.67) * 5/9.
	{Name: "kelvin", Aliases: []string{"k"}, Dim: Temperature, Scale: 1},
	{Name: "celsius", Label: "°C", Dim: Temperature, Scale: 1, Offset: 273.15},
	{Name: "fahrenheit", Label: "°F", Dim: Temperature, Scale: 5.0 / 9.0, Offset: 45967.0 / 180.0},
}
