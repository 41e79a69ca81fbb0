package patterns

// commonFirstNames is a broad reference set used to validate the first token
// of a candidate team-member name. Deliberately generous: a miss here rejects
// the whole candidate.
var commonFirstNames = buildNameSet(
	"aaron", "abby", "abigail", "adam", "adrian", "aisha", "al", "alan", "albert",
	"alejandro", "alex", "alexander", "alexandra", "alexis", "alice", "alicia",
	"alison", "allen", "allison", "alyssa", "amanda", "amber", "amy", "ana",
	"andre", "andrea", "andres", "andrew", "andy", "angel", "angela", "angie",
	"anita", "ann", "anna", "anne", "annette", "annie", "anthony", "antonio",
	"april", "arthur", "ashley", "audrey", "austin", "barbara", "barry", "beau",
	"becky", "ben", "benjamin", "bernard", "beth", "bethany", "betty", "beverly",
	"bill", "billy", "blake", "bob", "bobby", "bonnie", "brad", "bradley",
	"brandi", "brandon", "brenda", "brendan", "brent", "brett", "brian",
	"brianna", "brittany", "brooke", "bruce", "bryan", "caleb", "cameron",
	"candace", "carl", "carla", "carlos", "carmen", "carol", "carolina",
	"caroline", "carolyn", "carrie", "casey", "cassandra", "catherine", "cathy",
	"cesar", "chad", "charlene", "charles", "charlie", "charlotte", "chase",
	"chelsea", "cheryl", "chris", "christian", "christina", "christine",
	"christopher", "christy", "cindy", "claire", "clara", "clarence", "claudia",
	"clayton", "clifford", "clint", "cody", "cole", "colin", "colleen",
	"connie", "connor", "corey", "courtney", "craig", "crystal", "curtis",
	"cynthia", "dale", "dan", "dana", "daniel", "danielle", "danny", "darlene",
	"darrell", "darren", "dave", "david", "dawn", "dean", "deanna", "debbie",
	"deborah", "debra", "dennis", "derek", "derrick", "devin", "diana", "diane",
	"diego", "dominic", "don", "donald", "donna", "doris", "dorothy", "doug",
	"douglas", "drew", "duane", "dustin", "dylan", "earl", "ed", "eddie",
	"edgar", "eduardo", "edward", "edwin", "elaine", "eleanor", "elena", "eli",
	"elias", "elizabeth", "ellen", "emily", "emma", "enrique", "eric", "erica",
	"erik", "erika", "erin", "ernest", "esther", "ethan", "eugene", "eva",
	"evan", "evelyn", "felipe", "felix", "fernando", "frances", "francis",
	"francisco", "frank", "fred", "frederick", "gabriel", "gabriela", "gail",
	"garrett", "gary", "gene", "george", "gerald", "gilbert", "gina", "glen",
	"glenn", "gloria", "gordon", "grace", "grant", "greg", "gregory",
	"guadalupe", "guillermo", "gustavo", "hannah", "harold", "harry", "harvey",
	"heather", "hector", "heidi", "helen", "henry", "herbert", "holly", "hope",
	"howard", "hugh", "ian", "irene", "isaac", "isabel", "ivan", "jack",
	"jackie", "jacob", "jacqueline", "jaime", "jake", "james", "jamie", "jan",
	"jane", "janet", "janice", "jared", "jason", "javier", "jay", "jean",
	"jeanette", "jeff", "jeffrey", "jennifer", "jenny", "jeremiah", "jeremy",
	"jermaine", "jerome", "jerry", "jesse", "jessica", "jesus", "jill", "jim",
	"jimmy", "joan", "joann", "joanna", "joanne", "joe", "joel", "joey", "john",
	"johnny", "jon", "jonathan", "jordan", "jorge", "jose", "joseph", "josh",
	"joshua", "joyce", "juan", "judith", "judy", "julia", "julian", "julie",
	"julio", "justin", "kaitlyn", "karen", "karl", "kate", "katelyn",
	"katherine", "kathleen", "kathryn", "kathy", "katie", "katrina", "kay",
	"kayla", "keith", "kelly", "kelsey", "ken", "kendra", "kenneth", "kent",
	"kevin", "kim", "kimberly", "kirk", "krista", "kristen", "kristin",
	"kristina", "kristy", "kurt", "kyle", "lance", "larry", "laura", "lauren",
	"laurie", "lawrence", "leah", "lee", "leo", "leon", "leonard", "leslie",
	"lester", "levi", "lewis", "lillian", "linda", "lindsay", "lindsey", "lisa",
	"lloyd", "logan", "lois", "lonnie", "loretta", "lori", "lorraine", "louis",
	"louise", "lucas", "luis", "luke", "lydia", "lynn", "mabel", "mack",
	"madison", "manuel", "marc", "marcia", "marcos", "marcus", "margaret",
	"maria", "mariah", "marie", "marilyn", "mario", "marion", "marissa", "mark",
	"marlene", "marsha", "marshall", "martha", "martin", "marvin", "mary",
	"mason", "mathew", "matt", "matthew", "maureen", "max", "maxwell", "megan",
	"melanie", "melinda", "melissa", "melvin", "meredith", "michael", "micheal",
	"michele", "michelle", "miguel", "mike", "mildred", "miles", "milton",
	"mindy", "miranda", "miriam", "mitchell", "molly", "monica", "morgan",
	"nancy", "naomi", "natalie", "natasha", "nathan", "nathaniel", "neil",
	"nelson", "nicholas", "nick", "nicolas", "nicole", "nina", "noah", "nora",
	"norma", "norman", "oliver", "olivia", "omar", "oscar", "owen", "pablo",
	"pam", "pamela", "pat", "patricia", "patrick", "paul", "paula", "pauline",
	"pedro", "peggy", "penny", "pete", "peter", "phil", "philip", "phillip",
	"phyllis", "preston", "priscilla", "rachael", "rachel", "rafael", "ralph",
	"ramon", "randall", "randy", "raul", "ray", "raymond", "rebecca", "regina",
	"reginald", "rene", "renee", "rex", "ricardo", "richard", "rick", "ricky",
	"rita", "rob", "robert", "roberta", "roberto", "robin", "rodney", "roger",
	"roland", "ron", "ronald", "ronnie", "rosa", "rose", "ross", "roy", "ruben",
	"russ", "russell", "ruth", "ryan", "sabrina", "sally", "sam", "samantha",
	"samuel", "sandra", "sandy", "sara", "sarah", "scott", "sean", "sergio",
	"seth", "shane", "shannon", "sharon", "shaun", "shawn", "sheila", "shelby",
	"shelley", "sherri", "sherry", "shirley", "sidney", "simon", "sonia",
	"sophia", "spencer", "stacey", "stacy", "stanley", "stephanie", "stephen",
	"steve", "steven", "stuart", "sue", "susan", "suzanne", "sydney", "sylvia",
	"tamara", "tammy", "tanya", "tara", "taylor", "ted", "teresa", "terrance",
	"terrence", "terri", "terry", "thelma", "theodore", "theresa", "thomas",
	"tiffany", "tim", "timothy", "tina", "todd", "tom", "tommy", "toni", "tony",
	"tonya", "tracey", "traci", "tracy", "travis", "trevor", "trey", "tricia",
	"troy", "tyler", "valerie", "vanessa", "vernon", "veronica", "vicki",
	"vickie", "victor", "victoria", "vincent", "virginia", "vivian", "wade",
	"walter", "wanda", "warren", "wayne", "wendy", "wesley", "will", "william",
	"willie", "wilson", "yolanda", "yvonne", "zachary", "zach", "zoe",
)

// nameNoiseWords are tokens that disqualify a candidate name outright: place
// names that look like first names, generic business nouns, and UI verbs that
// leak out of navigation markup.
var nameNoiseWords = buildNameSet(
	// Place names.
	"houston", "dallas", "austin", "phoenix", "denver", "atlanta", "boston",
	"chicago", "seattle", "portland", "orlando", "memphis", "nashville",
	"charlotte", "jackson", "madison", "arlington", "aurora", "raleigh",
	"tampa", "tucson", "omaha", "cleveland", "virginia", "carolina", "georgia",
	"tennessee", "texas", "florida", "nevada", "arizona", "montana", "dakota",
	// Business nouns.
	"services", "service", "solutions", "systems", "plumbing", "roofing",
	"heating", "cooling", "electric", "electrical", "company", "incorporated",
	"inc", "llc", "corp", "group", "enterprises", "associates", "partners",
	"industries", "construction", "landscaping", "cleaning", "repair",
	"restoration", "contractors", "contracting", "supply", "equipment",
	"quality", "premier", "professional", "certified", "licensed", "insured",
	"residential", "commercial", "emergency", "affordable", "reliable",
	"trusted", "family", "local", "best", "top", "experts", "expert",
	// UI verbs and navigation words.
	"contact", "call", "click", "learn", "read", "view", "visit", "schedule",
	"request", "submit", "subscribe", "follow", "share", "home", "about",
	"team", "staff", "menu", "search", "login", "register", "more", "today",
	"now", "free", "estimate", "quote", "page", "site", "website", "welcome",
)

func buildNameSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
