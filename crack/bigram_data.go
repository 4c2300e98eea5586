package crack

// bigramLogProb holds log10 probabilities of English letter bigrams,
// trained offline on roughly four thousand letters of prose with
// additive smoothing.  Row is the first letter, column the second.
var bigramLogProb = [26][26]float64{
	{-3.9398, -2.7637, -2.1545, -2.6176, -3.9398, -2.7094, -2.4485, -3.4627, -2.6176, -3.9398, -2.7094, -2.1995, -2.5781, -1.8292, -3.9398, -2.8259, -3.9398, -2.0422, -2.2155, -1.9186, -3.0947, -3.2408, -3.2408, -3.9398, -2.7637, -3.9398},
	{-3.0947, -3.9398, -3.9398, -3.9398, -2.4774, -3.9398, -3.9398, -3.9398, -3.2408, -3.9398, -3.9398, -2.7094, -3.9398, -3.4627, -3.2408, -3.9398, -3.9398, -2.8984, -3.2408, -3.4627, -3.0947, -3.9398, -3.9398, -3.9398, -2.6611, -3.9398},
	{-2.3716, -3.9398, -3.2408, -3.9398, -2.3958, -3.9398, -3.9398, -2.1995, -2.6611, -3.9398, -2.5419, -3.2408, -3.9398, -3.9398, -2.1995, -3.9398, -3.9398, -2.5419, -3.4627, -2.4774, -2.8984, -3.9398, -3.9398, -3.9398, -3.4627, -3.9398},
	{-2.7637, -2.6611, -2.9856, -3.2408, -2.0648, -3.4627, -3.4627, -3.9398, -2.3958, -3.9398, -3.4627, -2.9856, -3.2408, -3.9398, -2.7094, -3.4627, -3.9398, -2.8984, -2.6611, -2.2677, -3.2408, -3.9398, -2.6176, -3.9398, -3.4627, -3.9398},
	{-2.0207, -2.7094, -2.1405, -2.0104, -2.3716, -2.5781, -2.8984, -2.9856, -2.3958, -3.2408, -3.9398, -2.3958, -2.2677, -1.9904, -2.3488, -2.3716, -3.0947, -1.7666, -1.8791, -2.0422, -3.4627, -2.5085, -2.5419, -2.8984, -2.8984, -3.9398},
	{-2.6176, -3.9398, -3.2408, -3.4627, -2.7637, -2.8984, -3.4627, -3.9398, -2.8984, -3.9398, -3.9398, -3.0947, -3.2408, -3.4627, -2.5085, -3.0947, -3.9398, -2.7094, -3.0947, -2.3716, -2.9856, -3.9398, -3.0947, -3.9398, -3.4627, -3.9398},
	{-2.6176, -3.2408, -3.2408, -3.9398, -2.3488, -3.2408, -3.9398, -2.6611, -2.8259, -3.9398, -3.9398, -2.9856, -3.2408, -2.7094, -2.9856, -3.0947, -3.9398, -2.6611, -3.4627, -2.7637, -2.7637, -3.9398, -3.4627, -3.9398, -3.9398, -3.9398},
	{-2.1545, -3.4627, -3.9398, -3.4627, -1.6454, -3.9398, -3.9398, -3.9398, -2.3270, -3.9398, -3.4627, -3.4627, -3.4627, -3.9398, -2.3270, -3.2408, -3.9398, -3.2408, -3.2408, -2.5781, -3.0947, -3.9398, -3.9398, -3.9398, -3.2408, -3.9398},
	{-2.8259, -3.0947, -2.4213, -2.7094, -2.5419, -3.2408, -2.5781, -3.9398, -3.9398, -3.9398, -3.9398, -2.6176, -2.5085, -1.7223, -2.3270, -2.8259, -3.9398, -2.6611, -2.1010, -2.1269, -3.4627, -3.0947, -3.9398, -3.9398, -3.9398, -3.2408},
	{-3.9398, -3.9398, -3.9398, -3.9398, -3.2408, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398},
	{-3.0947, -3.9398, -3.9398, -3.9398, -2.4213, -3.9398, -3.9398, -3.9398, -2.9856, -3.9398, -3.9398, -3.4627, -3.9398, -3.2408, -3.4627, -3.9398, -3.9398, -3.9398, -3.4627, -3.4627, -3.9398, -3.9398, -3.4627, -3.9398, -3.9398, -3.9398},
	{-2.3270, -3.4627, -3.2408, -2.7094, -2.1010, -3.4627, -3.4627, -3.9398, -2.4774, -3.9398, -3.9398, -2.5419, -3.0947, -3.9398, -2.5085, -3.2408, -3.9398, -3.9398, -2.6611, -2.8984, -3.0947, -3.9398, -3.4627, -3.9398, -2.5085, -3.9398},
	{-2.1995, -2.9856, -3.4627, -3.9398, -2.4213, -3.2408, -3.9398, -3.4627, -2.5085, -3.9398, -3.9398, -3.9398, -3.0947, -3.9398, -2.4213, -2.6611, -3.9398, -3.4627, -2.8984, -3.4627, -3.4627, -3.9398, -3.4627, -3.9398, -3.4627, -3.9398},
	{-2.3064, -2.9856, -2.3716, -1.9530, -2.1010, -3.4627, -1.9808, -3.4627, -2.5419, -3.9398, -3.9398, -2.8259, -3.9398, -2.9856, -2.3488, -3.2408, -3.9398, -3.4627, -2.3716, -2.0886, -3.0947, -3.4627, -2.8984, -3.9398, -2.6611, -3.9398},
	{-2.8259, -3.0947, -2.8984, -2.7637, -3.4627, -2.0207, -2.9856, -3.4627, -2.9856, -3.9398, -3.2408, -2.8259, -2.3064, -1.8791, -2.9856, -2.5781, -3.9398, -1.9442, -2.3716, -2.4774, -2.2677, -2.9856, -2.7094, -3.9398, -3.9398, -3.9398},
	{-2.6176, -3.9398, -3.9398, -3.9398, -2.4774, -3.9398, -3.9398, -2.8984, -3.0947, -3.9398, -3.9398, -2.4485, -3.9398, -3.9398, -2.8259, -3.4627, -3.9398, -2.4485, -3.0947, -2.5085, -2.8259, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398},
	{-3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.4627, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -2.9856, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398},
	{-2.2322, -3.4627, -2.5781, -2.5781, -1.8716, -3.0947, -2.9856, -3.9398, -2.3958, -3.9398, -3.0947, -3.4627, -2.5085, -2.7094, -2.0765, -2.9856, -3.4627, -2.7094, -2.2866, -2.2677, -3.0947, -3.4627, -3.4627, -3.9398, -2.2496, -3.9398},
	{-2.0422, -3.0947, -2.6176, -2.9856, -2.1839, -2.8259, -3.4627, -2.5419, -2.0886, -3.9398, -3.0947, -3.2408, -2.9856, -2.8259, -2.4485, -2.6611, -3.9398, -3.2408, -2.1839, -1.8429, -2.7637, -3.4627, -2.7094, -3.9398, -3.2408, -3.9398},
	{-2.1545, -3.4627, -2.8259, -3.9398, -1.9355, -3.0947, -3.2408, -1.5876, -1.8867, -3.9398, -3.9398, -2.9856, -3.4627, -3.9398, -1.9270, -2.8984, -3.9398, -2.3270, -2.1995, -2.1269, -2.7094, -3.9398, -3.2408, -3.9398, -2.8984, -3.9398},
	{-3.0947, -3.2408, -3.2408, -3.9398, -2.9856, -3.9398, -2.8984, -3.9398, -2.8984, -3.9398, -3.9398, -2.5085, -3.0947, -2.6611, -3.9398, -3.4627, -3.9398, -2.4485, -2.5781, -2.4213, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398},
	{-3.4627, -3.9398, -3.9398, -3.9398, -2.3488, -3.9398, -3.9398, -3.9398, -2.8984, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398},
	{-2.6176, -3.9398, -3.9398, -3.9398, -2.8259, -3.9398, -3.9398, -2.3958, -2.6611, -3.9398, -3.9398, -3.2408, -3.9398, -3.9398, -2.7094, -3.9398, -3.9398, -2.9856, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398},
	{-3.4627, -3.9398, -3.4627, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.0947, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398},
	{-2.8259, -3.4627, -2.9856, -3.2408, -2.9856, -2.9856, -3.4627, -2.8984, -2.8259, -3.9398, -3.9398, -2.9856, -3.9398, -3.4627, -2.7637, -2.7094, -3.4627, -3.9398, -2.5781, -2.5419, -3.2408, -3.9398, -3.4627, -3.9398, -3.4627, -3.9398},
	{-3.4627, -3.9398, -3.9398, -3.9398, -3.4627, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398, -3.9398},}
