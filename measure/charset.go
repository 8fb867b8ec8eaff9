package measure

// 该文件列出字形宽度表需要预先测量的字符集合。

// latinChars 为拉丁字母与数字。
const latinChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// asciiSymbols 为常见 ASCII 标点与符号（含空格）。
const asciiSymbols = " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// cjkPunctuation 为常见全角标点。
const cjkPunctuation = "，。、；：？！“”‘’（）《》【】「」『』…—～·"

// CommonCJK 是预先测量的常用汉字（约 650 个）。
// 表外的汉字走 defaultCharWidth*cjkWidthFactor 的估算。
const CommonCJK = "" +
	"的一是不了人我在有他这中大来上个国到说们为子和你地出道也时年得就那要下以生会自着" +
	"去之过家学对可她里后小么心多天而能好都然没日于起还发成事只作当想看文无开手十用主" +
	"行方又如前所本见经头面公同三已老从动两长知民样现分将外但身些与高意进把法此实回二" +
	"理美点月明其种声全工己话儿者向情部正名定女问力机给等几很业最间新什打便位因重被走" +
	"电四第门相次东政海口使教西再平真听世气信北少关并内加化由却代军产入先山五太水万市" +
	"眼体别处总才场师书比住员九笑性通目华报立马命张活难神数件安表原车白应路期叫死常提" +
	"感金何更反合放做系计或司利受光王果亲界及今京务制解各任至清物台象记边共风战干接它" +
	"许八特觉望直服毛林题建南度统色字请交爱让认算论百吃义科怎元社术结六功指思非流每青" +
	"管夫连远资队跟带花快条院变联言权往展该领传近留红治决周保达办运武半候七必城父强步" +
	"完革深区即求品士转量空甚众技轻程告江语英基派满式李息写呢识极令黄德收脸钱党倒未持" +
	"取设始版双历越史商千片容研像找友孩站广改议形委早房音火际则首单病据准夜装随热击群" +
	"包注照具格团选低阳角号云考营飞落医血温复费养试整谁图母石树失坐怀线级破备讲喜吗规" +
	"视状局导约初影修药够环演参卫班称态急根古组游兵类观布胡排造证器项省兄离钟奇段哪顾" +
	"谈职假存味刻切答怕助护福罗湖州采亚跑苦顺异富按投欢响鱼料争积预掉险毕弟妈爸哥姐妹" +
	"朋季春夏秋冬晚午雨雪星草木森龙虎鸟猫狗牛羊猪鸡鸭蛇鼠兔猴衣食菜米饭茶酒汤糖盐油肉" +
	"蛋奶汁咖啡超店银校园铁汽船桥街楼层窗户锁钥匙桌椅床灯脑网络邮短乐戏足篮球泳跳舞唱" +
	"歌画读词句篇章节"
