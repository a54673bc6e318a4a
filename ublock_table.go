package bunsetsu

// unicodeBlocks maps code point ranges to their Unicode block identifiers.
// Entries are sorted by range start and searched by blockSearch; gaps between
// ranges are unassigned and classify as block 0. The identifiers follow the
// UBlockCode enumeration of the Unicode block property so that block-code
// features stay stable against models trained with ICU-derived data.
var unicodeBlocks = [][3]int32{
	{0x0000, 0x007F, 1}, // Basic Latin
	{0x0080, 0x00FF, 2}, // Latin-1 Supplement
	{0x0100, 0x017F, 3}, // Latin Extended-A
	{0x0180, 0x024F, 4}, // Latin Extended-B
	{0x0250, 0x02AF, 5}, // IPA Extensions
	{0x02B0, 0x02FF, 6}, // Spacing Modifier Letters
	{0x0300, 0x036F, 7}, // Combining Diacritical Marks
	{0x0370, 0x03FF, 8}, // Greek and Coptic
	{0x0400, 0x04FF, 9}, // Cyrillic
	{0x0500, 0x052F, 97}, // Cyrillic Supplement
	{0x0530, 0x058F, 10}, // Armenian
	{0x0590, 0x05FF, 11}, // Hebrew
	{0x0600, 0x06FF, 12}, // Arabic
	{0x0700, 0x074F, 13}, // Syriac
	{0x0750, 0x077F, 128}, // Arabic Supplement
	{0x0780, 0x07BF, 14}, // Thaana
	{0x07C0, 0x07FF, 146}, // NKo
	{0x0800, 0x083F, 172}, // Samaritan
	{0x0840, 0x085F, 198}, // Mandaic
	{0x0860, 0x086F, 279}, // Syriac Supplement
	{0x0870, 0x089F, 309}, // Arabic Extended-B
	{0x08A0, 0x08FF, 210}, // Arabic Extended-A
	{0x0900, 0x097F, 15}, // Devanagari
	{0x0980, 0x09FF, 16}, // Bengali
	{0x0A00, 0x0A7F, 17}, // Gurmukhi
	{0x0A80, 0x0AFF, 18}, // Gujarati
	{0x0B00, 0x0B7F, 19}, // Oriya
	{0x0B80, 0x0BFF, 20}, // Tamil
	{0x0C00, 0x0C7F, 21}, // Telugu
	{0x0C80, 0x0CFF, 22}, // Kannada
	{0x0D00, 0x0D7F, 23}, // Malayalam
	{0x0D80, 0x0DFF, 24}, // Sinhala
	{0x0E00, 0x0E7F, 25}, // Thai
	{0x0E80, 0x0EFF, 26}, // Lao
	{0x0F00, 0x0FFF, 27}, // Tibetan
	{0x1000, 0x109F, 28}, // Myanmar
	{0x10A0, 0x10FF, 29}, // Georgian
	{0x1100, 0x11FF, 30}, // Hangul Jamo
	{0x1200, 0x137F, 31}, // Ethiopic
	{0x1380, 0x139F, 134}, // Ethiopic Supplement
	{0x13A0, 0x13FF, 32}, // Cherokee
	{0x1400, 0x167F, 33}, // Unified Canadian Aboriginal Syllabics
	{0x1680, 0x169F, 34}, // Ogham
	{0x16A0, 0x16FF, 35}, // Runic
	{0x1700, 0x171F, 98}, // Tagalog
	{0x1720, 0x173F, 99}, // Hanunoo
	{0x1740, 0x175F, 100}, // Buhid
	{0x1760, 0x177F, 101}, // Tagbanwa
	{0x1780, 0x17FF, 36}, // Khmer
	{0x1800, 0x18AF, 37}, // Mongolian
	{0x18B0, 0x18FF, 173}, // Unified Canadian Aboriginal Syllabics Extended
	{0x1900, 0x194F, 111}, // Limbu
	{0x1950, 0x197F, 112}, // Tai Le
	{0x1980, 0x19DF, 139}, // New Tai Lue
	{0x19E0, 0x19FF, 113}, // Khmer Symbols
	{0x1A00, 0x1A1F, 129}, // Buginese
	{0x1A20, 0x1AAF, 174}, // Tai Tham
	{0x1AB0, 0x1AFF, 224}, // Combining Diacritical Marks Extended
	{0x1B00, 0x1B7F, 147}, // Balinese
	{0x1B80, 0x1BBF, 155}, // Sundanese
	{0x1BC0, 0x1BFF, 199}, // Batak
	{0x1C00, 0x1C4F, 156}, // Lepcha
	{0x1C50, 0x1C7F, 157}, // Ol Chiki
	{0x1C80, 0x1C8F, 265}, // Cyrillic Extended-C
	{0x1C90, 0x1CBF, 283}, // Georgian Extended
	{0x1CC0, 0x1CCF, 219}, // Sundanese Supplement
	{0x1CD0, 0x1CFF, 175}, // Vedic Extensions
	{0x1D00, 0x1D7F, 114}, // Phonetic Extensions
	{0x1D80, 0x1DBF, 141}, // Phonetic Extensions Supplement
	{0x1DC0, 0x1DFF, 131}, // Combining Diacritical Marks Supplement
	{0x1E00, 0x1EFF, 38}, // Latin Extended Additional
	{0x1F00, 0x1FFF, 39}, // Greek Extended
	{0x2000, 0x206F, 40}, // General Punctuation
	{0x2070, 0x209F, 41}, // Superscripts and Subscripts
	{0x20A0, 0x20CF, 42}, // Currency Symbols
	{0x20D0, 0x20FF, 43}, // Combining Diacritical Marks for Symbols
	{0x2100, 0x214F, 44}, // Letterlike Symbols
	{0x2150, 0x218F, 45}, // Number Forms
	{0x2190, 0x21FF, 46}, // Arrows
	{0x2200, 0x22FF, 47}, // Mathematical Operators
	{0x2300, 0x23FF, 48}, // Miscellaneous Technical
	{0x2400, 0x243F, 49}, // Control Pictures
	{0x2440, 0x245F, 50}, // Optical Character Recognition
	{0x2460, 0x24FF, 51}, // Enclosed Alphanumerics
	{0x2500, 0x257F, 52}, // Box Drawing
	{0x2580, 0x259F, 53}, // Block Elements
	{0x25A0, 0x25FF, 54}, // Geometric Shapes
	{0x2600, 0x26FF, 55}, // Miscellaneous Symbols
	{0x2700, 0x27BF, 56}, // Dingbats
	{0x27C0, 0x27EF, 102}, // Miscellaneous Mathematical Symbols-A
	{0x27F0, 0x27FF, 103}, // Supplemental Arrows-A
	{0x2800, 0x28FF, 57}, // Braille Patterns
	{0x2900, 0x297F, 104}, // Supplemental Arrows-B
	{0x2980, 0x29FF, 105}, // Miscellaneous Mathematical Symbols-B
	{0x2A00, 0x2AFF, 106}, // Supplemental Mathematical Operators
	{0x2B00, 0x2BFF, 115}, // Miscellaneous Symbols and Arrows
	{0x2C00, 0x2C5F, 136}, // Glagolitic
	{0x2C60, 0x2C7F, 148}, // Latin Extended-C
	{0x2C80, 0x2CFF, 132}, // Coptic
	{0x2D00, 0x2D2F, 135}, // Georgian Supplement
	{0x2D30, 0x2D7F, 144}, // Tifinagh
	{0x2D80, 0x2DDF, 133}, // Ethiopic Extended
	{0x2DE0, 0x2DFF, 158}, // Cyrillic Extended-A
	{0x2E00, 0x2E7F, 142}, // Supplemental Punctuation
	{0x2E80, 0x2EFF, 58}, // CJK Radicals Supplement
	{0x2F00, 0x2FDF, 59}, // Kangxi Radicals
	{0x2FF0, 0x2FFF, 60}, // Ideographic Description Characters
	{0x3000, 0x303F, 61}, // CJK Symbols and Punctuation
	{0x3040, 0x309F, 62}, // Hiragana
	{0x30A0, 0x30FF, 63}, // Katakana
	{0x3100, 0x312F, 64}, // Bopomofo
	{0x3130, 0x318F, 65}, // Hangul Compatibility Jamo
	{0x3190, 0x319F, 66}, // Kanbun
	{0x31A0, 0x31BF, 67}, // Bopomofo Extended
	{0x31C0, 0x31EF, 130}, // CJK Strokes
	{0x31F0, 0x31FF, 107}, // Katakana Phonetic Extensions
	{0x3200, 0x32FF, 68}, // Enclosed CJK Letters and Months
	{0x3300, 0x33FF, 69}, // CJK Compatibility
	{0x3400, 0x4DBF, 70}, // CJK Unified Ideographs Extension A
	{0x4DC0, 0x4DFF, 116}, // Yijing Hexagram Symbols
	{0x4E00, 0x9FFF, 71}, // CJK Unified Ideographs
	{0xA000, 0xA48F, 72}, // Yi Syllables
	{0xA490, 0xA4CF, 73}, // Yi Radicals
	{0xA4D0, 0xA4FF, 176}, // Lisu
	{0xA500, 0xA63F, 159}, // Vai
	{0xA640, 0xA69F, 160}, // Cyrillic Extended-B
	{0xA6A0, 0xA6FF, 177}, // Bamum
	{0xA700, 0xA71F, 138}, // Modifier Tone Letters
	{0xA720, 0xA7FF, 149}, // Latin Extended-D
	{0xA800, 0xA82F, 143}, // Syloti Nagri
	{0xA830, 0xA83F, 178}, // Common Indic Number Forms
	{0xA840, 0xA87F, 150}, // Phags-pa
	{0xA880, 0xA8DF, 161}, // Saurashtra
	{0xA8E0, 0xA8FF, 179}, // Devanagari Extended
	{0xA900, 0xA92F, 162}, // Kayah Li
	{0xA930, 0xA95F, 163}, // Rejang
	{0xA960, 0xA97F, 180}, // Hangul Jamo Extended-A
	{0xA980, 0xA9DF, 181}, // Javanese
	{0xA9E0, 0xA9FF, 238}, // Myanmar Extended-B
	{0xAA00, 0xAA5F, 164}, // Cham
	{0xAA60, 0xAA7F, 182}, // Myanmar Extended-A
	{0xAA80, 0xAADF, 183}, // Tai Viet
	{0xAAE0, 0xAAFF, 213}, // Meetei Mayek Extensions
	{0xAB00, 0xAB2F, 200}, // Ethiopic Extended-A
	{0xAB30, 0xAB6F, 231}, // Latin Extended-E
	{0xAB70, 0xABBF, 255}, // Cherokee Supplement
	{0xABC0, 0xABFF, 184}, // Meetei Mayek
	{0xAC00, 0xD7AF, 74}, // Hangul Syllables
	{0xD7B0, 0xD7FF, 185}, // Hangul Jamo Extended-B
	{0xD800, 0xDB7F, 75}, // High Surrogates
	{0xDB80, 0xDBFF, 76}, // High Private Use Surrogates
	{0xDC00, 0xDFFF, 77}, // Low Surrogates
	{0xE000, 0xF8FF, 78}, // Private Use Area
	{0xF900, 0xFAFF, 79}, // CJK Compatibility Ideographs
	{0xFB00, 0xFB4F, 80}, // Alphabetic Presentation Forms
	{0xFB50, 0xFDFF, 81}, // Arabic Presentation Forms-A
	{0xFE00, 0xFE0F, 108}, // Variation Selectors
	{0xFE10, 0xFE1F, 145}, // Vertical Forms
	{0xFE20, 0xFE2F, 82}, // Combining Half Marks
	{0xFE30, 0xFE4F, 83}, // CJK Compatibility Forms
	{0xFE50, 0xFE6F, 84}, // Small Form Variants
	{0xFE70, 0xFEFF, 85}, // Arabic Presentation Forms-B
	{0xFF00, 0xFFEF, 86}, // Halfwidth and Fullwidth Forms
	{0xFFF0, 0xFFFF, 87}, // Specials
	{0x10000, 0x1007F, 117}, // Linear B Syllabary
	{0x10080, 0x100FF, 118}, // Linear B Ideograms
	{0x10100, 0x1013F, 119}, // Aegean Numbers
	{0x10140, 0x1018F, 127}, // Ancient Greek Numbers
	{0x10190, 0x101CF, 165}, // Ancient Symbols
	{0x101D0, 0x101FF, 166}, // Phaistos Disc
	{0x10280, 0x1029F, 167}, // Lycian
	{0x102A0, 0x102DF, 168}, // Carian
	{0x102E0, 0x102FF, 223}, // Coptic Epact Numbers
	{0x10300, 0x1032F, 88}, // Old Italic
	{0x10330, 0x1034F, 89}, // Gothic
	{0x10350, 0x1037F, 241}, // Old Permic
	{0x10380, 0x1039F, 120}, // Ugaritic
	{0x103A0, 0x103DF, 140}, // Old Persian
	{0x10400, 0x1044F, 90}, // Deseret
	{0x10450, 0x1047F, 121}, // Shavian
	{0x10480, 0x104AF, 122}, // Osmanya
	{0x104B0, 0x104FF, 271}, // Osage
	{0x10500, 0x1052F, 226}, // Elbasan
	{0x10530, 0x1056F, 222}, // Caucasian Albanian
	{0x10570, 0x105BF, 319}, // Vithkuqi
	{0x10600, 0x1077F, 232}, // Linear A
	{0x10780, 0x107BF, 313}, // Latin Extended-F
	{0x10800, 0x1083F, 123}, // Cypriot Syllabary
	{0x10840, 0x1085F, 186}, // Imperial Aramaic
	{0x10860, 0x1087F, 244}, // Palmyrene
	{0x10880, 0x108AF, 239}, // Nabataean
	{0x108E0, 0x108FF, 258}, // Hatran
	{0x10900, 0x1091F, 151}, // Phoenician
	{0x10920, 0x1093F, 169}, // Lydian
	{0x10980, 0x1099F, 215}, // Meroitic Hieroglyphs
	{0x109A0, 0x109FF, 214}, // Meroitic Cursive
	{0x10A00, 0x10A5F, 137}, // Kharoshthi
	{0x10A60, 0x10A7F, 187}, // Old South Arabian
	{0x10A80, 0x10A9F, 240}, // Old North Arabian
	{0x10AC0, 0x10AFF, 234}, // Manichaean
	{0x10B00, 0x10B3F, 188}, // Avestan
	{0x10B40, 0x10B5F, 189}, // Inscriptional Parthian
	{0x10B60, 0x10B7F, 190}, // Inscriptional Pahlavi
	{0x10B80, 0x10BAF, 246}, // Psalter Pahlavi
	{0x10C00, 0x10C4F, 191}, // Old Turkic
	{0x10C80, 0x10CFF, 260}, // Old Hungarian
	{0x10D00, 0x10D3F, 285}, // Hanifi Rohingya
	{0x10E60, 0x10E7F, 192}, // Rumi Numeral Symbols
	{0x10E80, 0x10EBF, 308}, // Yezidi
	{0x10EC0, 0x10EFF, 321}, // Arabic Extended-C
	{0x10F00, 0x10F2F, 290}, // Old Sogdian
	{0x10F30, 0x10F6F, 291}, // Sogdian
	{0x10F70, 0x10FAF, 315}, // Old Uyghur
	{0x10FB0, 0x10FDF, 301}, // Chorasmian
	{0x10FE0, 0x10FFF, 293}, // Elymaic
	{0x11000, 0x1107F, 201}, // Brahmi
	{0x11080, 0x110CF, 193}, // Kaithi
	{0x110D0, 0x110FF, 218}, // Sora Sompeng
	{0x11100, 0x1114F, 212}, // Chakma
	{0x11150, 0x1117F, 233}, // Mahajani
	{0x11180, 0x111DF, 217}, // Sharada
	{0x111E0, 0x111FF, 249}, // Sinhala Archaic Numbers
	{0x11200, 0x1124F, 229}, // Khojki
	{0x11280, 0x112AF, 259}, // Multani
	{0x112B0, 0x112FF, 230}, // Khudawadi
	{0x11300, 0x1137F, 228}, // Grantha
	{0x11400, 0x1147F, 270}, // Newa
	{0x11480, 0x114DF, 251}, // Tirhuta
	{0x11580, 0x115FF, 248}, // Siddham
	{0x11600, 0x1165F, 236}, // Modi
	{0x11660, 0x1167F, 269}, // Mongolian Supplement
	{0x11680, 0x116CF, 220}, // Takri
	{0x11700, 0x1174F, 253}, // Ahom
	{0x11800, 0x1184F, 282}, // Dogra
	{0x118A0, 0x118FF, 252}, // Warang Citi
	{0x11900, 0x1195F, 303}, // Dives Akuru
	{0x119A0, 0x119FF, 294}, // Nandinagari
	{0x11A00, 0x11A4F, 280}, // Zanabazar Square
	{0x11A50, 0x11AAF, 278}, // Soyombo
	{0x11AB0, 0x11ABF, 318}, // Unified Canadian Aboriginal Syllabics Extended-A
	{0x11AC0, 0x11AFF, 245}, // Pau Cin Hau
	{0x11B00, 0x11B5F, 324}, // Devanagari Extended-A
	{0x11C00, 0x11C6F, 264}, // Bhaiksuki
	{0x11C70, 0x11CBF, 268}, // Marchen
	{0x11D00, 0x11D5F, 276}, // Masaram Gondi
	{0x11D60, 0x11DAF, 284}, // Gunjala Gondi
	{0x11EE0, 0x11EFF, 287}, // Makasar
	{0x11F00, 0x11F5F, 326}, // Kawi
	{0x11FB0, 0x11FBF, 305}, // Lisu Supplement
	{0x11FC0, 0x11FFF, 299}, // Tamil Supplement
	{0x12000, 0x123FF, 152}, // Cuneiform
	{0x12400, 0x1247F, 153}, // Cuneiform Numbers and Punctuation
	{0x12480, 0x1254F, 257}, // Early Dynastic Cuneiform
	{0x12F90, 0x12FFF, 310}, // Cypro-Minoan
	{0x13000, 0x1342F, 194}, // Egyptian Hieroglyphs
	{0x13430, 0x1343F, 292}, // Egyptian Hieroglyph Format Controls
	{0x14400, 0x1467F, 254}, // Anatolian Hieroglyphs
	{0x16800, 0x16A3F, 202}, // Bamum Supplement
	{0x16A40, 0x16A6F, 237}, // Mro
	{0x16A70, 0x16ACF, 316}, // Tangsa
	{0x16AD0, 0x16AFF, 221}, // Bassa Vah
	{0x16B00, 0x16B8F, 243}, // Pahawh Hmong
	{0x16E40, 0x16E9F, 289}, // Medefaidrin
	{0x16F00, 0x16F9F, 216}, // Miao
	{0x16FE0, 0x16FFF, 267}, // Ideographic Symbols and Punctuation
	{0x17000, 0x187FF, 272}, // Tangut
	{0x18800, 0x18AFF, 273}, // Tangut Components
	{0x18B00, 0x18CFF, 304}, // Khitan Small Script
	{0x18D00, 0x18D7F, 307}, // Tangut Supplement
	{0x1AFF0, 0x1AFFF, 312}, // Kana Extended-B
	{0x1B000, 0x1B0FF, 203}, // Kana Supplement
	{0x1B100, 0x1B12F, 275}, // Kana Extended-A
	{0x1B130, 0x1B16F, 297}, // Small Kana Extension
	{0x1B170, 0x1B2FF, 277}, // Nushu
	{0x1BC00, 0x1BC9F, 225}, // Duployan
	{0x1BCA0, 0x1BCAF, 247}, // Shorthand Format Controls
	{0x1CF00, 0x1CF4F, 320}, // Znamenny Musical Notation
	{0x1D000, 0x1D0FF, 91}, // Byzantine Musical Symbols
	{0x1D100, 0x1D1FF, 92}, // Musical Symbols
	{0x1D200, 0x1D24F, 126}, // Ancient Greek Musical Notation
	{0x1D2C0, 0x1D2DF, 325}, // Kaktovik Numerals
	{0x1D2E0, 0x1D2FF, 288}, // Mayan Numerals
	{0x1D300, 0x1D35F, 124}, // Tai Xuan Jing Symbols
	{0x1D360, 0x1D37F, 154}, // Counting Rod Numerals
	{0x1D400, 0x1D7FF, 93}, // Mathematical Alphanumeric Symbols
	{0x1D800, 0x1DAAF, 262}, // Sutton SignWriting
	{0x1DF00, 0x1DFFF, 314}, // Latin Extended-G
	{0x1E000, 0x1E02F, 266}, // Glagolitic Supplement
	{0x1E030, 0x1E08F, 323}, // Cyrillic Extended-D
	{0x1E100, 0x1E14F, 295}, // Nyiakeng Puachue Hmong
	{0x1E290, 0x1E2BF, 317}, // Toto
	{0x1E2C0, 0x1E2FF, 300}, // Wancho
	{0x1E4D0, 0x1E4FF, 327}, // Nag Mundari
	{0x1E7E0, 0x1E7FF, 311}, // Ethiopic Extended-B
	{0x1E800, 0x1E8DF, 235}, // Mende Kikakui
	{0x1E900, 0x1E95F, 263}, // Adlam
	{0x1EC70, 0x1ECBF, 286}, // Indic Siyaq Numbers
	{0x1ED00, 0x1ED4F, 296}, // Ottoman Siyaq Numbers
	{0x1EE00, 0x1EEFF, 211}, // Arabic Mathematical Alphabetic Symbols
	{0x1F000, 0x1F02F, 170}, // Mahjong Tiles
	{0x1F030, 0x1F09F, 171}, // Domino Tiles
	{0x1F0A0, 0x1F0FF, 204}, // Playing Cards
	{0x1F100, 0x1F1FF, 195}, // Enclosed Alphanumeric Supplement
	{0x1F200, 0x1F2FF, 196}, // Enclosed Ideographic Supplement
	{0x1F300, 0x1F5FF, 205}, // Miscellaneous Symbols and Pictographs
	{0x1F600, 0x1F64F, 206}, // Emoticons
	{0x1F650, 0x1F67F, 242}, // Ornamental Dingbats
	{0x1F680, 0x1F6FF, 207}, // Transport and Map Symbols
	{0x1F700, 0x1F77F, 208}, // Alchemical Symbols
	{0x1F780, 0x1F7FF, 227}, // Geometric Shapes Extended
	{0x1F800, 0x1F8FF, 250}, // Supplemental Arrows-C
	{0x1F900, 0x1F9FF, 261}, // Supplemental Symbols and Pictographs
	{0x1FA00, 0x1FA6F, 281}, // Chess Symbols
	{0x1FA70, 0x1FAFF, 298}, // Symbols and Pictographs Extended-A
	{0x1FB00, 0x1FBFF, 306}, // Symbols for Legacy Computing
	{0x20000, 0x2A6DF, 94}, // CJK Unified Ideographs Extension B
	{0x2A700, 0x2B73F, 197}, // CJK Unified Ideographs Extension C
	{0x2B740, 0x2B81F, 209}, // CJK Unified Ideographs Extension D
	{0x2B820, 0x2CEAF, 256}, // CJK Unified Ideographs Extension E
	{0x2CEB0, 0x2EBEF, 274}, // CJK Unified Ideographs Extension F
	{0x2F800, 0x2FA1F, 95}, // CJK Compatibility Ideographs Supplement
	{0x30000, 0x3134F, 302}, // CJK Unified Ideographs Extension G
	{0x31350, 0x323AF, 322}, // CJK Unified Ideographs Extension H
	{0xE0000, 0xE007F, 96}, // Tags
	{0xE0100, 0xE01EF, 125}, // Variation Selectors Supplement
	{0xF0000, 0xFFFFF, 109}, // Supplementary Private Use Area-A
	{0x100000, 0x10FFFF, 110}, // Supplementary Private Use Area-B
}
