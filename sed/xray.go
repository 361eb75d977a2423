package sed

import "gonum.org/v1/gonum/floats"

// The X-ray template of the model, log10 nu in Hz against log10 nuLnu in
// units of A_X solar luminosities. Index 2 is the 2 keV anchor used by alpha_OX.
var (
	xrayLogNu = [...]float64{
		17.405214248838412, 17.620237480640167, 17.68, 17.781569437274136,
		17.956375838926174, 18.131388745482706, 18.225658234383070, 18.279194630872480,
		18.387041817243160, 18.535622096024780, 18.630304594734124, 18.711306143520908,
		18.819204956117710, 18.980382034073310, 19.141249354672176, 19.288435725348478,
		19.435570469798660, 19.542385131646878, 19.622354155911204, 19.728962312854932,
		19.808828084667013, 19.875529168817764, 19.928600929272072, 19.981775942178630,
		20.048167268972640, 20.101135776974700, 20.154001032524523, 20.220443985544660,
		20.273257614868356, 20.339597315436244, 20.37919463087248, 20.445534331440374,
		20.498502839442438,
	}

	xrayLogNuLnu = [...]float64{
		10.188461538461539, 10.207692307692307, 10.21, 10.226923076923077,
		10.25, 10.288461538461538, 10.311538461538461, 10.3,
		10.334615384615384, 10.403846153846153, 10.457692307692309, 10.492307692307692,
		10.53076923076923, 10.538461538461538, 10.523076923076923, 10.488461538461538,
		10.45, 10.407692307692308, 10.365384615384615, 10.307692307692307,
		10.257692307692308, 10.226923076923077, 10.180769230769231, 10.142307692307693,
		10.088461538461537, 10.034615384615385, 9.973076923076922, 9.923076923076923,
		9.857692307692307, 9.8, 9.75, 9.692307692307692,
		9.638461538461538,
	}
)

// XRayLen is the number of samples in the X-ray template.
const XRayLen = len(xrayLogNu)

// xray returns copies of the template with the luminosities shifted by logAX.
func xray(logAX float64) (logNu, logNuLnu []float64) {
	logNu = append([]float64(nil), xrayLogNu[:]...)
	logNuLnu = append([]float64(nil), xrayLogNuLnu[:]...)
	floats.AddConst(logAX, logNuLnu)
	return logNu, logNuLnu
}
