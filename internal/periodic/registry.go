package periodic

// elements is the element registry in display order.
var elements = []Element{
	// Antiquité
	{"C", "Carbone", -25000, "Préhistoire", EpochAntiquity},
	{"S", "Soufre", -2000, "Chinois anciens", EpochAntiquity},
	{"Fe", "Fer", -1500, "Hittites", EpochAntiquity},
	{"Cu", "Cuivre", -9000, "Moyen-Orient", EpochAntiquity},
	{"Ag", "Argent", -3000, "Mésopotamiens", EpochAntiquity},
	{"Sn", "Étain", -2000, "Civilisations anciennes", EpochAntiquity},
	{"Au", "Or", -6000, "Égyptiens", EpochAntiquity},
	{"Hg", "Mercure", -1500, "Chinois/Égyptiens", EpochAntiquity},
	{"Pb", "Plomb", -3000, "Mésopotamiens", EpochAntiquity},

	// Moyen-Âge
	{"As", "Arsenic", 1250, "Albert le Grand", EpochMiddleAges},
	{"Sb", "Antimoine", 800, "Jâbir ibn Hayyân", EpochMiddleAges},
	{"Bi", "Bismuth", 1400, "Inconnu", EpochMiddleAges},
	{"Zn", "Zinc", 1000, "Indiens", EpochMiddleAges},

	// Renaissance
	{"P", "Phosphore", 1669, "H. Brand", EpochRenaissance},
	{"Co", "Cobalt", 1735, "G. Brandt", EpochRenaissance},
	{"Ni", "Nickel", 1751, "A. F. Cronstedt", EpochRenaissance},
	{"Pt", "Platine", 1557, "J. C. Scaliger", EpochRenaissance},

	// Révolution Chimique
	{"H", "Hydrogène", 1766, "H. Cavendish", EpochChemicalRevolution},
	{"N", "Azote", 1772, "D. Rutherford", EpochChemicalRevolution},
	{"O", "Oxygène", 1774, "J. Priestley", EpochChemicalRevolution},
	{"Cl", "Chlore", 1774, "C. W. Scheele", EpochChemicalRevolution},
	{"Mn", "Manganèse", 1774, "J. G. Gahn", EpochChemicalRevolution},
	{"Cr", "Chrome", 1797, "L. N. Vauquelin", EpochChemicalRevolution},
	{"U", "Uranium", 1789, "M. H. Klaproth", EpochChemicalRevolution},

	// Ère Spectroscopique
	{"Li", "Lithium", 1817, "J. A. Arfwedson", EpochSpectroscopic},
	{"Na", "Sodium", 1807, "H. Davy", EpochSpectroscopic},
	{"K", "Potassium", 1807, "H. Davy", EpochSpectroscopic},
	{"Rb", "Rubidium", 1861, "R. Bunsen, G. Kirchhoff", EpochSpectroscopic},
	{"Cs", "Césium", 1860, "R. Bunsen, G. Kirchhoff", EpochSpectroscopic},
	{"Ca", "Calcium", 1808, "H. Davy", EpochSpectroscopic},
	{"Sr", "Strontium", 1790, "A. Crawford", EpochSpectroscopic},
	{"Ba", "Baryum", 1808, "H. Davy", EpochSpectroscopic},
	{"He", "Hélium", 1868, "P. Janssen, J. N. Lockyer", EpochSpectroscopic},
	{"Ne", "Néon", 1898, "W. Ramsay, M. Travers", EpochSpectroscopic},
	{"Ar", "Argon", 1894, "Lord Rayleigh, W. Ramsay", EpochSpectroscopic},

	// Période Moderne
	{"Ra", "Radium", 1898, "P. et M. Curie", EpochModern},
	{"Rn", "Radon", 1900, "F. E. Dorn", EpochModern},
	{"Fr", "Francium", 1939, "M. Perey", EpochModern},
	{"Tc", "Technétium", 1937, "C. Perrier, E. Segrè", EpochModern},
}

// epochs is the epoch registry, indexed by Epoch.
var epochs = [epochCount]EpochInfo{
	{
		Epoch:       EpochAntiquity,
		Period:      "Avant 500",
		Description: "Éléments connus depuis l'antiquité",
		Color:       mustHex("#F5DEB3"),
		Declared:    []string{"C", "S", "Fe", "Cu", "Ag", "Sn", "Au", "Hg", "Pb"},
	},
	{
		Epoch:       EpochMiddleAges,
		Period:      "500-1500",
		Description: "Éléments découverts au Moyen-Âge",
		Color:       mustHex("#DEB887"),
		Declared:    []string{"As", "Sb", "Bi", "Zn"},
	},
	{
		Epoch:       EpochRenaissance,
		Period:      "1500-1700",
		Description: "Découvertes de la Renaissance",
		Color:       mustHex("#F4A460"),
		Declared:    []string{"P", "Co", "Ni", "Pt"},
	},
	{
		Epoch:       EpochChemicalRevolution,
		Period:      "1700-1800",
		Description: "Période de la révolution chimique",
		Color:       mustHex("#CD853F"),
		Declared:    []string{"H", "N", "O", "Cl", "Mn", "Mo", "Te", "Cr", "W", "U", "Ti", "Be"},
	},
	{
		Epoch:       EpochSpectroscopic,
		Period:      "1800-1900",
		Description: "Découvertes par spectroscopie",
		Color:       mustHex("#D2691E"),
		Declared:    []string{"Li", "Na", "K", "Rb", "Cs", "Ca", "Sr", "Ba", "B", "Al", "Si", "Se", "Br", "I", "He", "Ne", "Ar", "Kr", "Xe"},
	},
	{
		Epoch:       EpochModern,
		Period:      "1900-Aujourd'hui",
		Description: "Éléments découverts au 20ème siècle",
		Color:       mustHex("#A0522D"),
		Declared:    []string{"Ra", "Rn", "Fr", "Tc", "Pm", "Tous les actinides"},
	},
}

// signatures is the spectral registry. Tl has a signature but no element
// record; lookups by symbol still find it.
var signatures = []Signature{
	// Red
	{"Li", RGB{255, 0, 0}, 670.8, []string{"670.8 nm"}},
	{"Rb", RGB{200, 50, 50}, 780.0, []string{"780.0 nm", "794.8 nm"}},
	{"Sr", RGB{255, 100, 100}, 460.7, []string{"460.7 nm"}},

	// Green
	{"Tl", RGB{0, 255, 0}, 535.0, []string{"535.0 nm"}},
	{"Ba", RGB{100, 255, 100}, 553.5, []string{"553.5 nm"}},
	{"Cu", RGB{0, 200, 0}, 521.8, []string{"521.8 nm"}},

	// Blue
	{"Cs", RGB{0, 0, 255}, 455.5, []string{"455.5 nm"}},
	{"Hg", RGB{100, 100, 255}, 435.8, []string{"435.8 nm"}},
	{"As", RGB{50, 50, 200}, 450.0, []string{"450.0 nm"}},

	// Mixed
	{"Na", RGB{255, 255, 0}, 589.0, []string{"589.0 nm", "589.6 nm"}},
	{"K", RGB{255, 200, 0}, 766.5, []string{"766.5 nm", "769.9 nm"}},
	{"H", RGB{255, 100, 255}, 656.3, []string{"656.3 nm (Hα)", "486.1 nm (Hβ)"}},
	{"He", RGB{200, 150, 255}, 587.6, []string{"587.6 nm"}},
	{"Ne", RGB{255, 100, 100}, 640.2, []string{"640.2 nm"}},
}
