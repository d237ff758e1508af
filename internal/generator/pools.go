package generator

// Name and job-title pools the user generator cycles through by index.
// Sized so that embedding the numeric user id in the email keeps addresses
// unique even when a first/last combination repeats.

var firstNames = []string{
	"Anouk", "Bram", "Cedric", "Daan", "Evi", "Fleur", "Gijs", "Hanne",
	"Ilse", "Joram", "Kiki", "Lars", "Maud", "Niek", "Olaf", "Puk",
	"Quin", "Rosa", "Sven", "Tessa",
}

var lastNames = []string{
	"Aalbers", "Bakker", "Cornelissen", "De Bruin", "Elders", "Flierman",
	"Gerrits", "Hoekstra", "IJsselstein", "Jongerius", "Koopal", "Lamers",
	"Meijer", "Noordzij", "Oerlemans", "Peeters", "Querido", "Rietveld",
	"Schaap", "Timmer",
}

var jobTitles = []string{
	"Consultant",
	"Projectleider",
	"Data Engineer",
	"UX Researcher",
	"Frontend Developer",
	"Backend Developer",
	"Product Owner",
}
